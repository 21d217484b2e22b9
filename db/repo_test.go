package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_pageWindow(t *testing.T) {
	tests := []struct {
		name               string
		page, size         int
		wantPage, wantSize int
		wantOffset         int
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 1, wantSize: 10, wantOffset: 0},
		{name: "negative_page", page: -3, size: 20, wantPage: 1, wantSize: 20, wantOffset: 0},
		{name: "second_page", page: 2, size: 10, wantPage: 2, wantSize: 10, wantOffset: 10},
		{name: "oversized_clamped", page: 1, size: 5000, wantPage: 1, wantSize: 10, wantOffset: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, s, off := pageWindow(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, p)
			assert.Equal(t, tc.wantSize, s)
			assert.Equal(t, tc.wantOffset, off)
		})
	}
}

func Test_pageCount(t *testing.T) {
	assert.Equal(t, 0, pageCount(0, 10))
	assert.Equal(t, 1, pageCount(1, 10))
	assert.Equal(t, 1, pageCount(10, 10))
	assert.Equal(t, 2, pageCount(11, 10))
	assert.Equal(t, 4, pageCount(31, 9))
}
