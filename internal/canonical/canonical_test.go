package canonical

import (
	"testing"
)

func TestMarshal_SortsKeysUTF16(t *testing.T) {
	obj := map[string]any{
		"zebra": "z",
		"apple": "a",
		"mango": "m",
	}

	data, err := Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"apple":"a","mango":"m","zebra":"z"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	data, err := Marshal(map[string]any{"expr": "a < b && c > d"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"expr":"a < b && c > d"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_FrequencyMapShape(t *testing.T) {
	freq := map[string]int64{"l": 3, " ": 1, "h": 1}

	data, err := Marshal(freq)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Space (U+0020) sorts before letters.
	want := `{" ":1,"h":1,"l":3}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_FrequencyKeysVerbatim(t *testing.T) {
	// U+212B (angstrom sign) is normalization-unstable: NFC rewrites it to
	// U+00C5. Frequency-map keys are raw code points of the analyzed value
	// and must survive byte for byte.
	data, err := Marshal(map[string]int64{"Å": 1})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := "{\"Å\":1}"
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_FrequencyKeysStayDistinct(t *testing.T) {
	freq := map[string]int64{"Å": 1, "Å": 1}

	data, err := Marshal(freq)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// U+00C5 sorts before U+212B; the two keys must not collapse into one.
	want := "{\"Å\":1,\"Å\":1}"
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_StringsNormalized(t *testing.T) {
	// Plain string values still go through NFC.
	data, err := Marshal(map[string]any{"v": "Å"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := "{\"v\":\"Å\"}"
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_FloatsForbidden(t *testing.T) {
	if _, err := Marshal(3.14); err == nil {
		t.Error("Marshal(3.14) succeeded, want error")
	}
	if _, err := Marshal(map[string]any{"x": 1.5}); err == nil {
		t.Error("Marshal with nested float succeeded, want error")
	}
}

func TestMarshal_NullForbidden(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("Marshal(nil) succeeded, want error")
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	obj := map[string]any{
		"b": []any{"x", int64(2), true},
		"a": map[string]any{"nested": "value"},
	}

	first, err := Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := Marshal(obj)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("Marshal not byte-stable: %s vs %s", again, first)
		}
	}
}

func TestCompareUTF16_SurrogatePairs(t *testing.T) {
	// U+FF61 (halfwidth ideographic full stop) is a single code unit 0xFF61.
	// U+10000 encodes as surrogate pair 0xD800 0xDC00, which orders BEFORE
	// 0xFF61 in UTF-16 despite being a larger code point.
	keys := SortedKeys(map[string]any{
		"｡":     1,
		"\U00010000": 2,
	})

	if keys[0] != "\U00010000" || keys[1] != "｡" {
		t.Errorf("surrogate pair ordering wrong: %q", keys)
	}
}
