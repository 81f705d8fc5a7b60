// Package browser opens links in the operator's default web browser.
package browser

import (
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// Open starts the platform's URL handler for url without waiting for it.
func Open(url string) error {
	name, args, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return errors.Wrapf(err, "failed to open %s", url)
	}
	return nil
}

func command(goos, url string) (string, []string, error) {
	if url == "" {
		return "", nil, errors.New("url cannot be empty")
	}
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, errors.Errorf("unsupported operating system: %s", goos)
	}
}
