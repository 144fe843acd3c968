package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListing_SetType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty defaults to wanted", "", TypeWanted},
		{"whitespace defaults to wanted", "   ", TypeWanted},
		{"giving kept", TypeGiving, TypeGiving},
		{"unknown value kept verbatim", "Продам", "Продам"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Listing
			l.SetType(tt.in)
			assert.Equal(t, tt.want, l.Type)
		})
	}
}
