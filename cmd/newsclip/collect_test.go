package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestParsePicks(t *testing.T) {
	testCases := []struct {
		name    string
		spec    string
		max     int
		want    []int
		wantErr bool
	}{
		{"single", "1", 5, []int{1}, false},
		{"multiple", "1,3,5", 5, []int{1, 3, 5}, false},
		{"spaces tolerated", " 2 , 4 ", 5, []int{2, 4}, false},
		{"trailing comma", "1,2,", 5, []int{1, 2}, false},
		{"zero is out of range", "0", 5, nil, true},
		{"beyond max", "6", 5, nil, true},
		{"not a number", "1,two", 5, nil, true},
		{"nothing usable", " , ", 5, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePicks(tc.spec, tc.max)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parsePicks(%q) error = %v, wantErr %v", tc.spec, err, tc.wantErr)
			}
			if !tc.wantErr && !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parsePicks(%q) = %v, want %v", tc.spec, got, tc.want)
			}
		})
	}
}

func TestCollectPickRequiresOut(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keywords.yaml")

	if _, err := runCmd(t, "collect", "--pick", "1", "--keywords", file); err == nil {
		t.Error("--pick without --out must fail, not silently skip the export")
	}
	if _, err := runCmd(t, "collect", "--all", "--keywords", file); err == nil {
		t.Error("--all without --out must fail, not silently skip the export")
	}
}

func TestResolveOutPath(t *testing.T) {
	dir := t.TempDir()

	if got := resolveOutPath(dir, "뉴스클리핑_2024-01-11.xlsx"); got != filepath.Join(dir, "뉴스클리핑_2024-01-11.xlsx") {
		t.Errorf("directory out path = %q", got)
	}

	file := filepath.Join(dir, "custom.xlsx")
	if got := resolveOutPath(file, "ignored.xlsx"); got != file {
		t.Errorf("file out path = %q", got)
	}
}
