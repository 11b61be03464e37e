package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	existing := slog.String(FieldOperation, "events.main")
	cases := []struct {
		name             string
		service, version string
		wantKeys         []string
	}{
		{name: "both", service: "fightcard-service", version: "v1", wantKeys: []string{FieldOperation, FieldService, FieldVersion}},
		{name: "service only", service: "fightcard-service", wantKeys: []string{FieldOperation, FieldService}},
		{name: "neither", wantKeys: []string{FieldOperation}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := WithCommon([]slog.Attr{existing}, tc.service, tc.version)
			if len(attrs) != len(tc.wantKeys) {
				t.Fatalf("expected %d attrs, got %+v", len(tc.wantKeys), attrs)
			}
			for i, key := range tc.wantKeys {
				if attrs[i].Key != key {
					t.Fatalf("attr %d: expected key %s, got %s", i, key, attrs[i].Key)
				}
			}
		})
	}
}
