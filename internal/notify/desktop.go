package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// DesktopNotifier pops up a desktop notification on the operator's machine
type DesktopNotifier struct{}

// Send runs the platform notifier; unsupported platforms are skipped
func (DesktopNotifier) Send(ctx context.Context, a Alert) error {
	title, body := desktopText(a)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := "display notification " + strconv.Quote(body) + " with title " + strconv.Quote(title)
		cmd = exec.CommandContext(ctx, "osascript", "-e", script)
	case "linux":
		cmd = exec.CommandContext(ctx, "notify-send", "--urgency=critical", "--icon=dialog-warning", title, body)
	default:
		return nil
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("desktop alert: %w", err)
	}
	return nil
}

func desktopText(a Alert) (title, body string) {
	return a.Title(), fmt.Sprintf("%s: %s (%s)",
		a.Record.User, a.Record.Detail, a.Record.Timestamp.Format("02/01/2006 15:04"))
}
