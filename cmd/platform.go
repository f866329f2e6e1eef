package main

import (
	"os/exec"
	goruntime "runtime"

	"github.com/document-export-service/pkg/dispatch"
)

// hostPlatform describes this process's sharing capabilities. A CLI host
// has no native share surface, so the ladder lands on the web URL.
func hostPlatform() dispatch.Platform {
	return dispatch.Platform{}
}

// execOpener launches URLs with the OS default handler.
type execOpener struct {
	launcher string
}

func newOpener() *execOpener {
	switch goruntime.GOOS {
	case "darwin":
		return &execOpener{launcher: "open"}
	case "windows":
		return &execOpener{launcher: "rundll32"}
	default:
		return &execOpener{launcher: "xdg-open"}
	}
}

func (o *execOpener) Open(url string) error {
	args := []string{url}
	if o.launcher == "rundll32" {
		args = []string{"url.dll,FileProtocolHandler", url}
	}
	return exec.Command(o.launcher, args...).Start()
}

// Navigate is the same as Open outside a browser context.
func (o *execOpener) Navigate(url string) error {
	return o.Open(url)
}
