package shared

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"
)

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("name", "  ", "name is required")
	v.NonNegative("salary", -1)
	v.NonNegative("fines", 0)

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "name" || issues[1].Field != "salary" {
		t.Fatalf("expected issues sorted by field, got %+v", issues)
	}
}

func TestValidatorDateAndOrder(t *testing.T) {
	v := NewValidator()
	start, ok := v.Date("startDate", "2024-02-15")
	if !ok {
		t.Fatalf("expected startDate to parse, issues: %+v", v.Issues())
	}
	end, ok := v.Date("endDate", "2024-02-01")
	if !ok {
		t.Fatalf("expected endDate to parse, issues: %+v", v.Issues())
	}
	v.DateOrder("startDate", start, "endDate", end)

	if !v.HasIssues() {
		t.Fatal("expected date order violation to be reported")
	}

	if _, ok := v.Date("badDate", "15/02/2024"); ok {
		t.Fatal("expected non-ISO date to be rejected")
	}
}

func TestRejectWritesValidationEnvelope(t *testing.T) {
	v := NewValidator()
	v.Add("month", "must be in YYYY-MM format")

	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected Reject to report issues")
	}
	if rec.Code != 400 {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var envelope struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success {
		t.Fatal("expected success=false")
	}
	if envelope.Error == nil || envelope.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error code, got %+v", envelope.Error)
	}
	if envelope.RequestID != "req-1" {
		t.Fatalf("expected request id to round-trip, got %q", envelope.RequestID)
	}
}

func TestParseDateAcceptsBothFormats(t *testing.T) {
	plain, err := ParseDate("2024-02-15")
	if err != nil {
		t.Fatalf("parse plain date: %v", err)
	}
	if plain.Year() != 2024 || plain.Month() != time.February || plain.Day() != 15 {
		t.Fatalf("unexpected parsed date %v", plain)
	}

	stamped, err := ParseDate("2024-02-15T08:30:00Z")
	if err != nil {
		t.Fatalf("parse RFC3339 date: %v", err)
	}
	if !stamped.Equal(time.Date(2024, 2, 15, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parsed timestamp %v", stamped)
	}
}
