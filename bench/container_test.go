package bench

import (
	"bytes"
	"testing"
)

func TestAppendSequence(t *testing.T) {
	arr := appendSequence(1000)

	if len(arr) != 1000 {
		t.Fatalf("len = %d, want 1000", len(arr))
	}

	for i, v := range arr {
		if v != int64(i) {
			t.Fatalf("arr[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestStrideSum(t *testing.T) {
	tests := []struct {
		n      int
		stride int
		want   int64
	}{
		{n: 10, stride: 1, want: 45},
		{n: 10, stride: 2, want: 20},
		{n: 1000, stride: 100, want: 4500},
		{n: 101, stride: 100, want: 100},
	}

	for _, tt := range tests {
		got := strideSum(appendSequence(tt.n), tt.stride)
		if got != tt.want {
			t.Errorf("strideSum(n=%d, stride=%d) = %d, want %d",
				tt.n, tt.stride, got, tt.want)
		}
	}
}

func TestHashInsertLookupDelete(t *testing.T) {
	const n = 5000

	h := insertKeys(n)
	if len(h) != n {
		t.Fatalf("size after inserts = %d, want %d", len(h), n)
	}

	sum, err := lookupSum(h, n)
	if err != nil {
		t.Fatalf("lookupSum failed: %v", err)
	}

	// Values equal their key suffix, so the sum is n*(n-1)/2.
	want := int64(n) * (n - 1) / 2
	if sum != want {
		t.Errorf("lookup sum = %d, want %d", sum, want)
	}

	deleteKeys(h, n)
	if len(h) != 0 {
		t.Errorf("size after deletes = %d, want 0", len(h))
	}
}

func TestLookupSumMissingKey(t *testing.T) {
	h := insertKeys(10)
	delete(h, "key7")

	if _, err := lookupSum(h, 10); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestRunContainerOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := RunContainer(&buf); err != nil {
		t.Fatalf("RunContainer failed: %v", err)
	}

	want := "array size: 2000000\n" +
		"array checksum: 19999000000\n" +
		"hash size: 500000\n" +
		"lookup sum: 124999750000\n" +
		"after delete: 0\n"

	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}
