package controller

import m "github.com/mouse-blink/linetally/internal/model"

// Message types.
type scanStartedMsg struct {
	root string
}

type scanProgressMsg struct {
	folder string
}

type scanDoneMsg struct {
	result m.ScanResult
	err    error
}
