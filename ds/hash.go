package ds

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a 64-bit hash. Keys equal under == must hash equally.
type Hasher[K comparable] func(K) uint64

// IntegerHasher hashes an integer key by its 8-byte little-endian form.
func IntegerHasher[K constraints.Integer]() Hasher[K] {
	return func(k K) uint64 {
		return hashUint64(uint64(k))
	}
}

// defaultHasher returns a hasher that gives the same result for the same key
// on every run, so bucket order is reproducible. Pointer-like keys hash by
// address, matching how == compares them, so the order of such keys is only
// stable within one process.
func defaultHasher[K comparable]() Hasher[K] {
	return func(k K) uint64 {
		return hashAny(k)
	}
}

func hashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}

func hashAny(k any) uint64 {
	switch v := k.(type) {
	case string:
		return xxhash.Sum64String(v)
	case int:
		return hashUint64(uint64(v))
	case int32:
		return hashUint64(uint64(v))
	case int64:
		return hashUint64(uint64(v))
	case uint:
		return hashUint64(uint64(v))
	case uint32:
		return hashUint64(uint64(v))
	case uint64:
		return hashUint64(v)
	case float64:
		return hashUint64(floatBits(v))
	}
	d := xxhash.New()
	writeValue(d, reflect.ValueOf(k))
	return d.Sum64()
}

// floatBits folds -0 onto 0 since the two compare equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

func writeUint64(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	d.Write(buf[:])
}

// writeValue feeds v to d in a form where values equal under == produce the
// same bytes: floats are folded at every depth, pointers, channels and
// unsafe pointers contribute their address, structs and arrays their
// elements, and interfaces their dynamic type and value.
func writeValue(d *xxhash.Digest, v reflect.Value) {
	switch v.Kind() {
	case reflect.Invalid:
		writeUint64(d, 0)
	case reflect.Bool:
		if v.Bool() {
			writeUint64(d, 1)
		} else {
			writeUint64(d, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint64(d, floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeUint64(d, floatBits(real(c)))
		writeUint64(d, floatBits(imag(c)))
	case reflect.String:
		s := v.String()
		writeUint64(d, uint64(len(s)))
		d.WriteString(s)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		writeUint64(d, uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			writeUint64(d, 0)
			return
		}
		e := v.Elem()
		d.WriteString(e.Type().String())
		writeValue(d, e)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			// == ignores blank fields
			if t.Field(i).Name == "_" {
				continue
			}
			writeValue(d, v.Field(i))
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(d, v.Index(i))
		}
	default:
		// Slices, maps and funcs only reach here inside an interface key,
		// where == panics before the hash matters.
		d.WriteString(v.Type().String())
	}
}
