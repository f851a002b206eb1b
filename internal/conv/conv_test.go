package conv

import "testing"

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(42); got != 42 {
		t.Fatalf("IntToUint32(42) = %d, want 42", got)
	}
	if got := IntToUint32(0); got != 0 {
		t.Fatalf("IntToUint32(0) = %d, want 0", got)
	}
}

func TestIntToUint32PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic converting a negative int")
		}
	}()
	IntToUint32(-1)
}

func TestIntToUint16(t *testing.T) {
	if got := IntToUint16(1000); got != 1000 {
		t.Fatalf("IntToUint16(1000) = %d, want 1000", got)
	}
}

func TestIntToUint16PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic converting an out-of-range int")
		}
	}()
	IntToUint16(70000)
}

func TestUint64ToUint32(t *testing.T) {
	if got := Uint64ToUint32(123); got != 123 {
		t.Fatalf("Uint64ToUint32(123) = %d, want 123", got)
	}
}

func TestUint64ToUint32PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic converting an out-of-range uint64")
		}
	}()
	Uint64ToUint32(1 << 40)
}
