package main

import (
	"testing"

	"myrouting/integration/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodes(t *testing.T) {
	tests := []struct {
		name    string
		grpc    string
		http    string
		want    []scenario.Node
		wantErr string
	}{
		{
			name: "pairs_in_order",
			grpc: "a:1, b:2",
			http: "http://a/,http://b",
			want: []scenario.Node{{GRPCAddr: "a:1", HTTPURL: "http://a"}, {GRPCAddr: "b:2", HTTPURL: "http://b"}},
		},
		{name: "empty", grpc: " , ", http: "", wantErr: "no gRPC addresses"},
		{name: "count_mismatch", grpc: "a:1,b:2", http: "http://a", wantErr: "2 gRPC addresses but 1 HTTP URLs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNodes(tt.grpc, tt.http)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", " ", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
