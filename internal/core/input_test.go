package core

import "testing"

func TestKeyStatePressLatchesOnce(t *testing.T) {
	var s KeyState
	s.Press(KeyFire)
	s.Press(KeyFire) // auto-repeat while held

	if !s.ConsumePress(KeyFire) {
		t.Fatal("first press should latch")
	}
	if s.ConsumePress(KeyFire) {
		t.Error("repeat while held should not latch again")
	}
	if !s.Held(KeyFire) {
		t.Error("key should still be held")
	}

	s.Release(KeyFire)
	s.Press(KeyFire)
	if !s.ConsumePress(KeyFire) {
		t.Error("press after release should latch")
	}
}

func TestKeyStateCodes(t *testing.T) {
	tests := []struct {
		code string
		key  Key
	}{
		{"ArrowUp", KeyUp},
		{"ArrowDown", KeyDown},
		{"ArrowLeft", KeyLeft},
		{"ArrowRight", KeyRight},
		{"Space", KeyFire},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			var s KeyState
			s.PressCode(tt.code)
			if !s.Held(tt.key) {
				t.Errorf("PressCode(%q) should hold %v", tt.code, tt.key)
			}
			s.ReleaseCode(tt.code)
			if s.Held(tt.key) {
				t.Errorf("ReleaseCode(%q) should release %v", tt.code, tt.key)
			}
		})
	}
}

func TestKeyStateIgnoresUnknownCodes(t *testing.T) {
	var s KeyState
	s.PressCode("KeyW")
	s.PressCode("Enter")

	for k := KeyUp; k < keyCount; k++ {
		if s.Held(k) {
			t.Errorf("unknown code should not hold %v", k)
		}
	}
}

func TestKeyStateReset(t *testing.T) {
	var s KeyState
	s.Press(KeyLeft)
	s.Press(KeyFire)
	s.Reset()

	if s.Held(KeyLeft) || s.Held(KeyFire) {
		t.Error("Reset should release all keys")
	}
	if s.ConsumePress(KeyFire) {
		t.Error("Reset should clear latches")
	}
}

func TestKeyStateOutOfRange(t *testing.T) {
	var s KeyState
	s.Press(Key(99))
	if s.Held(Key(99)) {
		t.Error("out-of-range key should never be held")
	}
}
