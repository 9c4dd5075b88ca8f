package bench

import (
	"fmt"
	"io"
	"strconv"
)

const (
	arrayAppends   = 2_000_000
	checksumStride = 100
	hashInserts    = 500_000
)

// RunContainer exercises the sequence container (append + indexed read)
// and the associative container (insert + keyed lookup + delete).
func RunContainer(w io.Writer) error {
	arr := appendSequence(arrayAppends)
	if err := emit(w, "array size", len(arr)); err != nil {
		return err
	}

	if err := emit(w, "array checksum", strideSum(arr, checksumStride)); err != nil {
		return err
	}

	h := insertKeys(hashInserts)
	if err := emit(w, "hash size", len(h)); err != nil {
		return err
	}

	sum, err := lookupSum(h, hashInserts)
	if err != nil {
		return err
	}

	if err := emit(w, "lookup sum", sum); err != nil {
		return err
	}

	deleteKeys(h, hashInserts)

	if len(h) != 0 {
		return fmt.Errorf("hash not empty after full deletion: %d keys remain", len(h))
	}

	return emit(w, "after delete", len(h))
}

// appendSequence grows a slice one element at a time so every append pays
// the container's real growth cost.
func appendSequence(n int) []int64 {
	var arr []int64
	for i := 0; i < n; i++ {
		arr = append(arr, int64(i))
	}

	return arr
}

func strideSum(arr []int64, stride int) int64 {
	var sum int64
	for i := 0; i < len(arr); i += stride {
		sum += arr[i]
	}

	return sum
}

func insertKeys(n int) map[string]int64 {
	h := make(map[string]int64)
	for k := 0; k < n; k++ {
		h["key"+strconv.Itoa(k)] = int64(k)
	}

	return h
}

// lookupSum reads every value back by its string key, rebuilding the key
// each iteration so the lookup exercises real hashing cost.
func lookupSum(h map[string]int64, n int) (int64, error) {
	var sum int64

	for m := 0; m < n; m++ {
		key := "key" + strconv.Itoa(m)

		v, ok := h[key]
		if !ok {
			return 0, fmt.Errorf("missing hash key %q", key)
		}

		sum += v
	}

	return sum, nil
}

func deleteKeys(h map[string]int64, n int) {
	for k := 0; k < n; k++ {
		delete(h, "key"+strconv.Itoa(k))
	}
}
