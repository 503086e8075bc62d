package parser

import (
	"reflect"
	"testing"
)

func TestDetectBlocks(t *testing.T) {
	rows := [][]string{
		{"Title"},
		{},
		{"", "Name", "Cost", "Hours"},
		{"", "A", "10", "4"},
		{"", "B", "12"},
		{"", "C", "", "", "x"},
		{"note"},
		{"k", "v"},
		{"k", "v"},
	}

	got := detectBlocks(rows, DefaultTableParams())
	want := []string{"B3:E6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("detectBlocks() = %v, expected %v", got, want)
	}

	got = detectBlocks(rows, TableDetectionParams{MinCols: 2, MinRows: 2})
	want = []string{"B3:E6", "A8:B9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("detectBlocks() = %v, expected %v", got, want)
	}
}

func TestDetectBlocksEmpty(t *testing.T) {
	if got := detectBlocks(nil, DefaultTableParams()); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
}
