package core

import "testing"

func TestBridgeDispatchesInlineWhenDetached(t *testing.T) {
	b := NewBridge()
	ran := 0
	b.Dispatch(func() { ran++ })
	if ran != 1 {
		t.Fatalf("detached bridge should run inline, ran=%d", ran)
	}
	if b.Send(StatusMsg{Text: "x"}) {
		t.Fatalf("send without a program should report false")
	}
	b.Dispatch(nil)
}
