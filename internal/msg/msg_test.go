package msg

import (
	"errors"
	"testing"
	"time"
)

func TestShowToast(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		duration time.Duration
	}{
		{
			name:     "normal toast",
			message:  "Copied https://example.com/demo.mp4",
			duration: 2 * time.Second,
		},
		{
			name:     "empty message",
			message:  "",
			duration: time.Second,
		},
		{
			name:     "zero duration",
			message:  "No timeout",
			duration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ShowToast(tt.message, tt.duration)
			if cmd == nil {
				t.Fatal("ShowToast should return a non-nil command")
			}

			toast, ok := cmd().(ToastMsg)
			if !ok {
				t.Fatalf("command should return ToastMsg")
			}
			if toast.Message != tt.message {
				t.Errorf("Message mismatch: got %q, want %q", toast.Message, tt.message)
			}
			if toast.Duration != tt.duration {
				t.Errorf("Duration mismatch: got %v, want %v", toast.Duration, tt.duration)
			}
			if toast.IsError {
				t.Errorf("IsError should be false for ShowToast")
			}
		})
	}
}

func TestShowError(t *testing.T) {
	cmd := ShowError(errors.New("clipboard unavailable"), 3*time.Second)
	toast, ok := cmd().(ToastMsg)
	if !ok {
		t.Fatal("command should return ToastMsg")
	}
	if !toast.IsError {
		t.Error("ShowError should set IsError")
	}
	if toast.Message != "clipboard unavailable" {
		t.Errorf("Message = %q", toast.Message)
	}
}
