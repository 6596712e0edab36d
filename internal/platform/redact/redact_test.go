package redact

import (
	"encoding/json"
	"testing"
)

func TestSensitiveKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"apiKey", true},
		{"API_SECRET", true},
		{"authToken", true},
		{"password", true},
		{"Authorization", false},
		{"amount", false},
		{"baseUrl", false},
	}
	for _, tc := range cases {
		if got := SensitiveKey(tc.key); got != tc.want {
			t.Errorf("SensitiveKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestValueMasksNestedKeys(t *testing.T) {
	in := map[string]any{
		"apiKey": "sk-12345",
		"amount": "1.5",
		"nested": map[string]any{
			"clientSecret": "shh",
			"chain":        "evm",
		},
		"list": []any{
			map[string]any{"password": "hunter2"},
		},
	}

	out, ok := Value(in).(map[string]any)
	if !ok {
		t.Fatal("expected map result")
	}
	if out["apiKey"] != Mask {
		t.Errorf("expected apiKey masked, got %v", out["apiKey"])
	}
	if out["amount"] != "1.5" {
		t.Errorf("expected amount untouched, got %v", out["amount"])
	}
	nested := out["nested"].(map[string]any)
	if nested["clientSecret"] != Mask {
		t.Errorf("expected clientSecret masked, got %v", nested["clientSecret"])
	}
	if nested["chain"] != "evm" {
		t.Errorf("expected chain untouched, got %v", nested["chain"])
	}
	entry := out["list"].([]any)[0].(map[string]any)
	if entry["password"] != Mask {
		t.Errorf("expected password masked, got %v", entry["password"])
	}

	// Original must stay untouched.
	if in["apiKey"] != "sk-12345" {
		t.Error("expected input map unmodified")
	}
}

func TestJSONMasks(t *testing.T) {
	masked := JSON([]byte(`{"apiKey":"sk-12345","amount":"1.5"}`))
	var decoded map[string]any
	if err := json.Unmarshal(masked, &decoded); err != nil {
		t.Fatalf("unmarshal masked: %v", err)
	}
	if decoded["apiKey"] != Mask {
		t.Errorf("expected apiKey masked, got %v", decoded["apiKey"])
	}
	if decoded["amount"] != "1.5" {
		t.Errorf("expected amount untouched, got %v", decoded["amount"])
	}
}

func TestJSONPassesThroughInvalidInput(t *testing.T) {
	raw := []byte("not json")
	if got := JSON(raw); string(got) != "not json" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
