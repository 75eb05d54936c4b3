package sheet

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func postCalc(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, req)
	return rec
}

func TestCalcSingle(t *testing.T) {
	rec := postCalc(t, `{"standard":"shenbian","mode":"single","param":"b_film",
		"inputs":{"b_transposed_thickness":3.0,"b_bare_thickness":0.6,"paper_thickness":0.2,"center_paper_thickness":0.15}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Kind != BFilm || math.Abs(res.Value-0.725) > 1e-9 || res.Precision != 4 {
		t.Errorf("result = %+v", res)
	}
	if res.Formula == "" {
		t.Errorf("result formula is empty")
	}
}

func TestCalcLargeValueEncodes(t *testing.T) {
	rec := postCalc(t, `{"standard":"shenbian","param":"a_die",
		"inputs":{"a_bare_thickness":1e306,"a_shrink_ratio":0,"a_reserve_margin":0}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body, err)
	}
	if res.Value != 1e306 {
		t.Errorf("value = %v, want 1e306", res.Value)
	}
}

func TestCalcFull(t *testing.T) {
	rec := postCalc(t, `{"standard":"hengbian","mode":"full","inputs":{
		"n":3,"a_transposed_thickness":2.0,"a_bare_thickness":0.5,"paper_thickness":0.1,
		"b_transposed_thickness":3.0,"b_bare_thickness":0.6,"center_paper_thickness":0.15,
		"a_shrink_ratio":0.05,"a_reserve_margin":0.02,"b_shrink_ratio":0.03,"b_reserve_margin":0.01}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var sh Sheet
	if err := json.NewDecoder(rec.Body).Decode(&sh); err != nil {
		t.Fatal(err)
	}
	if sh.Mode != Full || len(sh.Outcomes) != 4 {
		t.Errorf("sheet = %+v", sh)
	}
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"bad json", `{"standard":`, http.StatusBadRequest, "Invalid request payload"},
		{"text for a number", `{"standard":"shenbian","param":"a_die","inputs":{"a_bare_thickness":"abc"}}`, http.StatusBadRequest, "Invalid request payload"},
		{"unknown standard", `{"standard":"x","param":"a_die"}`, http.StatusBadRequest, "Invalid request payload"},
		{"unknown param", `{"standard":"shenbian","param":"c_die"}`, http.StatusBadRequest, "Invalid request payload"},
		{"missing input", `{"standard":"shenbian","param":"a_die","inputs":{"a_bare_thickness":1,"a_shrink_ratio":null}}`,
			http.StatusUnprocessableEntity, "calculation terminated: incomplete parameters"},
		{"overflowing sum", `{"standard":"shenbian","param":"a_die","inputs":{"a_bare_thickness":1.7e308,"a_shrink_ratio":1.7e308,"a_reserve_margin":0}}`,
			http.StatusUnprocessableEntity, "result is not a finite number"},
		{"degenerate n", `{"standard":"shenbian","param":"a_film","inputs":{"n":-1,"a_transposed_thickness":2,"a_bare_thickness":0.5,"paper_thickness":0.1}}`,
			http.StatusUnprocessableEntity, "computation error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postCalc(t, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			if !strings.Contains(rec.Body.String(), tt.wantError) {
				t.Errorf("body = %s, want it to contain %q", rec.Body, tt.wantError)
			}
		})
	}
}

func TestCalcMissingListsFields(t *testing.T) {
	rec := postCalc(t, `{"standard":"shenbian","param":"b_die","inputs":{"b_bare_thickness":1}}`)
	var body struct {
		Error   string  `json:"error"`
		Missing []Field `json:"missing"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Missing) != 2 || body.Missing[0] != BShrink || body.Missing[1] != BReserve {
		t.Errorf("missing = %v", body.Missing)
	}
}

func TestKinds(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Kinds(rec, httptest.NewRequest(http.MethodGet, "/api/kinds", nil))
	var c catalog
	if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
		t.Fatal(err)
	}
	if len(c.Kinds) != 4 || len(c.Standards) != 2 || len(c.Modes) != 2 || len(c.Full) != 11 {
		t.Fatalf("catalog = %+v", c)
	}
	if c.Kinds[0].Fields[0].Key != N || c.Kinds[0].Precision != 2 {
		t.Errorf("a film entry = %+v", c.Kinds[0])
	}

	presets := map[Field][]float64{}
	for _, f := range c.Full {
		if len(f.Presets) > 0 {
			presets[f.Key] = f.Presets
		}
	}
	want := map[Field][]float64{N: {1, 2}, Paper: {0.45, 1.35}, CenterPaper: {2.45, 3}}
	if !reflect.DeepEqual(presets, want) {
		t.Errorf("presets = %v, want %v", presets, want)
	}
	if got := c.Kinds[1].Fields[3]; got.Key != CenterPaper || len(got.Presets) != 2 {
		t.Errorf("b film center paper = %+v", got)
	}
}
