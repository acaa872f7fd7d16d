package util

import (
	"os/exec"
	"runtime"
)

// browserCommands 返回当前平台可尝试的打开命令，按优先级排列
func browserCommands(url string) [][]string {
	switch runtime.GOOS {
	case "windows":
		// rundll32 比 cmd /c start 对带参数的 URL 更稳定
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		return [][]string{
			{"xdg-open", url},
			{"google-chrome", url},
			{"firefox", url},
			{"chromium-browser", url},
			{"sensible-browser", url},
		}
	}
}

// OpenBrowserWithFallback 在系统默认浏览器中打开 URL，逐个尝试候选命令
func OpenBrowserWithFallback(url string) error {
	var lastErr error
	for _, args := range browserCommands(url) {
		if err := exec.Command(args[0], args[1:]...).Start(); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return lastErr
}
