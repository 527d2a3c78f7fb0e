package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHealthReport_JSONShape(t *testing.T) {
	report := HealthReport{
		Status: "healthy",
		Pool: PoolStats{
			TotalConns:    10,
			IdleConns:     5,
			AcquiredConns: 5,
			MaxConns:      20,
			AcquireCount:  100,
		},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)

	for _, field := range []string{`"status":"healthy"`, `"total_conns":10`, `"max_conns":20`, `"acquire_count":100`} {
		if !strings.Contains(body, field) {
			t.Errorf("response missing %s: %s", field, body)
		}
	}
	// A healthy report carries no error field.
	if strings.Contains(body, `"error"`) {
		t.Errorf("unexpected error field in healthy report: %s", body)
	}

	report.Status = "unhealthy"
	report.Error = "connection refused"
	data, err = json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"error":"connection refused"`) {
		t.Errorf("unhealthy report missing error: %s", data)
	}
}
