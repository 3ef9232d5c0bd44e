package input

// HumanPreset builds the manager used for a real player: the drop,
// rotation, and hold keys trigger once per press, while the two
// horizontal-movement keys auto-repeat at arr frames after an initial das
// frames of delay.
func HumanPreset(das, arr uint32) *Manager {
	m := NewManager()
	for _, k := range []Key{KeyHardDrop, KeySoftDrop, KeyFirmDrop, KeyRotateCW, KeyRotateCCW, KeyHold} {
		m.Register(k, NewCounter(0, 0))
	}
	m.Register(KeyMoveLeft, NewCounter(arr, das))
	m.Register(KeyMoveRight, NewCounter(arr, das))
	return m
}

// AutomationPreset builds the manager used by scripted or automated
// input: every key fires at most once per held frame, with no delay.
func AutomationPreset() *Manager {
	m := NewManager()
	for k := Key(0); k < numKeys; k++ {
		m.Register(k, NewCounter(1, 0))
	}
	return m
}
