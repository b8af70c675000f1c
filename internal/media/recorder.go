package media

import (
	"fmt"
	"os/exec"
	"sync"
	"syscall"

	"inkpad/internal/logs"
)

// Recorder drives an external capture command (arecord by default). Start
// spawns the command writing into a timestamped file; Stop terminates the
// capture session and hands back the file path.
type Recorder struct {
	mu      sync.Mutex
	command string
	lib     *Library
	cmd     *exec.Cmd
	path    string
}

func NewRecorder(lib *Library, command string) *Recorder {
	if command == "" {
		command = "arecord"
	}
	return &Recorder{lib: lib, command: command}
}

// Recording reports whether a capture session is active.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cmd != nil
}

// Start begins a capture session. Only one session runs at a time.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cmd != nil {
		return fmt.Errorf("recording already in progress")
	}
	path := r.lib.stampedPath("audio", ".wav")
	cmd := exec.Command(r.command, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", r.command, err)
	}
	r.cmd = cmd
	r.path = path
	return nil
}

// Stop ends the capture session and returns the recorded file path.
func (r *Recorder) Stop() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cmd == nil {
		return "", fmt.Errorf("no recording in progress")
	}
	path := r.path
	cmd := r.cmd
	r.cmd = nil
	r.path = ""

	if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
		logs.Logger.Printf("Error signaling recorder: %v", err)
		cmd.Process.Kill()
	}
	// The recorder flushes its file on SIGINT; the exit status is only
	// informational here.
	if err := cmd.Wait(); err != nil {
		logs.Logger.Printf("Recorder exited: %v", err)
	}
	return path, nil
}

// Play spawns a playback command for the recorded file, fire-and-forget.
func Play(path string) {
	go func() {
		if err := exec.Command("aplay", path).Run(); err != nil {
			logs.Logger.Printf("Error playing %s: %v", path, err)
		}
	}()
}
