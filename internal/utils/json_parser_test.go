package utils

import "testing"

type weightPayload struct {
	Price int `json:"pricePriority"`
	MPG   int `json:"mpgPriority"`
}

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPrice int
		wantMPG   int
		wantErr   bool
	}{
		{
			name:      "pure JSON",
			input:     `{"pricePriority": 8, "mpgPriority": 3}`,
			wantPrice: 8,
			wantMPG:   3,
		},
		{
			name:      "markdown json fence",
			input:     "```json\n{\"pricePriority\": 8, \"mpgPriority\": 3}\n```",
			wantPrice: 8,
			wantMPG:   3,
		},
		{
			name:      "bare fence",
			input:     "```\n{\"pricePriority\": 5, \"mpgPriority\": 5}\n```",
			wantPrice: 5,
			wantMPG:   5,
		},
		{
			name:      "surrounding prose",
			input:     `Sure! Here are the adjusted weights: {"pricePriority": 9, "mpgPriority": 2} as requested.`,
			wantPrice: 9,
			wantMPG:   2,
		},
		{
			name:      "trailing comma",
			input:     `Result: {"pricePriority": 4, "mpgPriority": 6,}`,
			wantPrice: 4,
			wantMPG:   6,
		},
		{
			name:      "nested braces in string",
			input:     `{"pricePriority": 7, "mpgPriority": 1}`,
			wantPrice: 7,
			wantMPG:   1,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			input:   "I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got weightPayload
			err := ParseAIJSON(tt.input, &got)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAIJSON failed: %v", err)
			}
			if got.Price != tt.wantPrice || got.MPG != tt.wantMPG {
				t.Errorf("got %+v, want price=%d mpg=%d", got, tt.wantPrice, tt.wantMPG)
			}
		})
	}
}

func TestParseAIJSON_StringWithBraces(t *testing.T) {
	var got map[string]interface{}
	input := `prefix {"note": "keep {this} intact", "pricePriority": 3} suffix`
	if err := ParseAIJSON(input, &got); err != nil {
		t.Fatalf("ParseAIJSON failed: %v", err)
	}
	if got["note"] != "keep {this} intact" {
		t.Errorf("string braces mangled: %v", got["note"])
	}
}
