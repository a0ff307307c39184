package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("username", "  ", v)
	Required("password", "pw", v)
	if v.Empty() {
		t.Fatalf("expected violations")
	}
	if v["username"] != "required" {
		t.Fatalf("unexpected violations %v", v)
	}
	if _, ok := v["password"]; ok {
		t.Fatalf("password should pass, got %v", v)
	}
}

func TestRangeFloat(t *testing.T) {
	v := Violations{}
	RangeFloat("job_satisfaction", 3, 1, 4, v)
	RangeFloat("work_life_balance", 5, 1, 4, v)
	if v["work_life_balance"] != "out_of_range" || len(v) != 1 {
		t.Fatalf("unexpected violations %v", v)
	}
}

func TestPositiveFloat(t *testing.T) {
	v := Violations{}
	PositiveFloat("monthly_income", 0, v)
	if v["monthly_income"] != "must_be_positive" {
		t.Fatalf("unexpected violations %v", v)
	}
}
