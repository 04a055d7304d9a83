package integration

import (
	"net/http"
	"testing"
)

func TestTransactionFlow(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "alice", "alice@example.com", "secret123")
	token := app.loginUser(t, "alice", "secret123")

	app.recordTransaction(t, token, "income", "Salary", "August salary", 500000)
	app.recordTransaction(t, token, "expense", "Food", "Groceries", 12550)
	app.recordTransaction(t, token, "expense", "Transportation", "Bus pass", 4500)

	t.Run("list_most_recent_first", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(data))
		}
		first := data[0].(map[string]interface{})
		if first["description"] != "Bus pass" {
			t.Errorf("expected the newest entry first, got %v", first["description"])
		}
		if result["total_items"].(float64) != 3 {
			t.Errorf("expected total_items 3, got %v", result["total_items"])
		}
	})

	t.Run("kind_filter", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?kind=expense", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("filtered list failed: %d %s", rec.Code, rec.Body.String())
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(data))
		}
		for _, item := range data {
			if item.(map[string]interface{})["kind"] != "expense" {
				t.Errorf("unexpected kind in filtered list: %v", item)
			}
		}
	})

	t.Run("summary", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/summary", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["total_income"].(float64) != 500000 {
			t.Errorf("expected total income 500000, got %v", summary["total_income"])
		}
		if summary["total_expense"].(float64) != 17050 {
			t.Errorf("expected total expense 17050, got %v", summary["total_expense"])
		}
		if summary["net"].(float64) != 482950 {
			t.Errorf("expected net 482950, got %v", summary["net"])
		}
		display := result["display"].(map[string]interface{})
		if display["net"] != "4829.50" {
			t.Errorf("expected display net 4829.50, got %v", display["net"])
		}
	})

	t.Run("owner_isolation", func(t *testing.T) {
		app.registerUser(t, "bobby", "bobby@example.com", "secret123")
		bobToken := app.loginUser(t, "bobby", "secret123")

		rec := app.request("GET", "/api/v1/transactions", "", bobToken)
		if rec.Code != http.StatusOK {
			t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 0 {
			t.Errorf("a fresh user should see an empty ledger, got %d entries", len(data))
		}
	})
}

func TestTransactionValidationOverHTTP(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "alice", "alice@example.com", "secret123")
	token := app.loginUser(t, "alice", "secret123")

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "unknown_kind",
			body:     `{"kind":"transfer","amount":100,"category":"Salary","description":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero_amount",
			body:     `{"kind":"income","amount":0,"category":"Salary","description":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative_amount",
			body:     `{"kind":"income","amount":-500,"category":"Salary","description":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "category_kind_mismatch",
			body:     `{"kind":"income","amount":100,"category":"Food","description":"x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad_date",
			body:     `{"kind":"income","amount":100,"category":"Salary","description":"x","occurred_on":"31-12-2025"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/transactions", tt.body, token)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
		})
	}

	// Nothing slipped into the ledger.
	rec := app.request("GET", "/api/v1/transactions", "", token)
	if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 0 {
		t.Errorf("rejected transactions must not be stored, found %d", len(data))
	}
}

func TestCategoriesOverHTTP(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "alice", "alice@example.com", "secret123")
	token := app.loginUser(t, "alice", "secret123")

	rec := app.request("GET", "/api/v1/categories?kind=expense", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("categories failed: %d %s", rec.Code, rec.Body.String())
	}
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 9 {
		t.Errorf("expected 9 expense categories, got %d", len(categories))
	}
}
