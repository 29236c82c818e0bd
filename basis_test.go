package amount

import (
	"database/sql/driver"
	"encoding/json"
	"testing"
)

func TestParseBasis(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Basis
		}{
			{"1", 1},
			{"3", 3},
			{"100", 100},
			{" 7 ", 7},
			{"1e0", 1},
			{"1e2", 100},
			{"1e18", 1_000_000_000_000_000_000},
			{"9223372036854775807", 9223372036854775807},
		}
		for _, tt := range tests {
			got, err := ParseBasis(tt.s)
			if err != nil {
				t.Errorf("ParseBasis(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseBasis(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":      "",
			"zero":       "0",
			"negative":   "-1",
			"letters":    "abc",
			"fraction":   "1.5",
			"mantissa":   "2e2",
			"exponent 1": "1e19",
			"exponent 2": "1e-1",
			"overflow":   "9223372036854775808",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseBasis(s)
				if err == nil {
					t.Fatalf("ParseBasis(%q) did not fail", s)
				}
				if !InvalidBasis.Has(err) {
					t.Errorf("ParseBasis(%q) failed with %v, want InvalidBasis", s, err)
				}
			})
		}
	})
}

func TestMustParseBasis(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseBasis(\"0\") did not panic")
		}
	}()
	MustParseBasis("0")
}

func TestBasisFromScale(t *testing.T) {
	tests := []struct {
		scale int
		want  Basis
	}{
		{0, 1},
		{2, 100},
		{3, 1000},
		{18, 1_000_000_000_000_000_000},
	}
	for _, tt := range tests {
		got, err := BasisFromScale(tt.scale)
		if err != nil {
			t.Errorf("BasisFromScale(%v) failed: %v", tt.scale, err)
			continue
		}
		if got != tt.want {
			t.Errorf("BasisFromScale(%v) = %v, want %v", tt.scale, got, tt.want)
		}
	}
	for _, scale := range []int{-1, 19} {
		if _, err := BasisFromScale(scale); err == nil {
			t.Errorf("BasisFromScale(%v) did not fail", scale)
		}
	}
}

func TestBasis_Scale(t *testing.T) {
	tests := []struct {
		b         Basis
		wantScale int
		wantOk    bool
	}{
		{1, 0, true},
		{10, 1, true},
		{100, 2, true},
		{1_000_000_000_000_000_000, 18, true},
		{3, 0, false},
		{20, 0, false},
		{0, 0, false},
		{-100, 0, false},
	}
	for _, tt := range tests {
		gotScale, gotOk := tt.b.Scale()
		if gotOk != tt.wantOk || (gotOk && gotScale != tt.wantScale) {
			t.Errorf("Basis(%v).Scale() = (%v, %v), want (%v, %v)", tt.b, gotScale, gotOk, tt.wantScale, tt.wantOk)
		}
	}
}

func TestBasis_IsValid(t *testing.T) {
	tests := []struct {
		b    Basis
		want bool
	}{
		{1, true},
		{3, true},
		{0, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := tt.b.IsValid(); got != tt.want {
			t.Errorf("Basis(%v).IsValid() = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestBasis_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(Basis(100))
		if err != nil {
			t.Fatalf("json.Marshal(100) failed: %v", err)
		}
		if string(got) != "100" {
			t.Errorf("json.Marshal(100) = %s, want 100", got)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			text string
			want Basis
		}{
			{`100`, 100},
			{`"100"`, 100},
			{`"1e3"`, 1000},
		}
		for _, tt := range tests {
			var got Basis
			if err := json.Unmarshal([]byte(tt.text), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.text, err)
				continue
			}
			if got != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.text, got, tt.want)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		got := Basis(7)
		if err := json.Unmarshal([]byte(`null`), &got); err != nil {
			t.Fatalf("json.Unmarshal(null) failed: %v", err)
		}
		if got != 7 {
			t.Errorf("json.Unmarshal(null) changed the basis to %v", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Basis
		if err := json.Unmarshal([]byte(`0`), &got); err == nil {
			t.Errorf("json.Unmarshal(0) did not fail")
		}
	})
}

func TestBasis_Text(t *testing.T) {
	b := Basis(250)
	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("%v.MarshalText() failed: %v", b, err)
	}
	var got Basis
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%s) failed: %v", text, err)
	}
	if got != b {
		t.Errorf("UnmarshalText(%s) = %v, want %v", text, got, b)
	}
	if err := got.UnmarshalText([]byte("-3")); err == nil {
		t.Errorf("UnmarshalText(-3) did not fail")
	}
}

func TestBasis_Binary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, b := range []Basis{1, 3, 100, 9223372036854775807} {
			data, err := b.MarshalBinary()
			if err != nil {
				t.Fatalf("%v.MarshalBinary() failed: %v", b, err)
			}
			if len(data) != 8 {
				t.Errorf("%v.MarshalBinary() returned %v bytes, want 8", b, len(data))
			}
			var got Basis
			if err := got.UnmarshalBinary(data); err != nil {
				t.Errorf("UnmarshalBinary(%x) failed: %v", data, err)
				continue
			}
			if got != b {
				t.Errorf("UnmarshalBinary(%x) = %v, want %v", data, got, b)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]byte{
			"short":    {0, 1},
			"zero":     {0, 0, 0, 0, 0, 0, 0, 0},
			"negative": {0x80, 0, 0, 0, 0, 0, 0, 1},
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				var got Basis
				if err := got.UnmarshalBinary(data); err == nil {
					t.Errorf("UnmarshalBinary(%x) did not fail", data)
				}
			})
		}
	})
}

func TestBasis_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Basis
		}{
			{int64(100), 100},
			{"1000", 1000},
			{[]byte("3"), 3},
		}
		for _, tt := range tests {
			var got Basis
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"null":  nil,
			"zero":  int64(0),
			"float": 1.5,
			"text":  "abc",
		}
		for name, value := range tests {
			t.Run(name, func(t *testing.T) {
				var got Basis
				if err := got.Scan(value); err == nil {
					t.Errorf("Scan(%v) did not fail", value)
				}
			})
		}
	})
}

func TestBasis_Value(t *testing.T) {
	got, err := Basis(100).Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if got != driver.Value(int64(100)) {
		t.Errorf("Value() = %v, want 100", got)
	}
}

func TestNullBasis(t *testing.T) {
	t.Run("scan", func(t *testing.T) {
		var n NullBasis
		if err := n.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if n.Valid {
			t.Errorf("Scan(nil) = %v, want invalid", n)
		}
		if err := n.Scan(int64(100)); err != nil {
			t.Fatalf("Scan(100) failed: %v", err)
		}
		if !n.Valid || n.Basis != 100 {
			t.Errorf("Scan(100) = %v, want valid 100", n)
		}
	})

	t.Run("value", func(t *testing.T) {
		got, err := NullBasis{}.Value()
		if err != nil || got != nil {
			t.Errorf("NullBasis{}.Value() = (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("json", func(t *testing.T) {
		var n NullBasis
		if err := json.Unmarshal([]byte(`null`), &n); err != nil || n.Valid {
			t.Errorf("json.Unmarshal(null) = (%v, %v)", n, err)
		}
		text, err := json.Marshal(NullBasis{Basis: 10, Valid: true})
		if err != nil || string(text) != "10" {
			t.Errorf("json.Marshal = (%s, %v), want 10", text, err)
		}
		text, err = json.Marshal(NullBasis{})
		if err != nil || string(text) != "null" {
			t.Errorf("json.Marshal = (%s, %v), want null", text, err)
		}
	})
}
