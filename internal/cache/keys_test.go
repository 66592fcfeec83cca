package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "summa",
			objectType:  "document",
			identifier:  "abc123",
			paramsKey:   nil,
			expectedKey: "summareader:summa:document:abc123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "summa",
			objectType:  "document",
			identifier:  "abc123",
			paramsKey:   []string{},
			expectedKey: "summareader:summa:document:abc123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "summa",
			objectType:  "article",
			identifier:  "I",
			paramsKey:   []string{"es"},
			expectedKey: "summareader:summa:article:I:es",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "summa",
			objectType:  "article",
			identifier:  "I-II",
			paramsKey:   []string{"2", "1", "la"},
			expectedKey: "summareader:summa:article:I-II:2_1_la",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
