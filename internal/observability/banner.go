package observability

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/term"
)

var startTime = time.Now()

const (
	colorReset    = "\033[0m"
	colorCyan     = "\033[36m"
	colorBold     = "\033[1m"
	colorNeonCyan = "\033[96m"
	colorNeonMag  = "\033[95m"
)

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

var bannerLines = []string{
	`  __  __ _____ ____    _    ____ ____ ___ ____ _____ `,
	` |  \/  | ____|  _ \  / \  / ___/ ___|_ _/ ___|_   _|`,
	` | |\/| |  _| | | | |/ _ \ \___ \___ \| |\___ \ | |  `,
	` | |  | | |___| |_| / ___ \ ___) |__) | | ___) || |  `,
	` |_|  |_|_____|____/_/   \_\____/____/___|____/ |_|  `,
}

// PrintBanner renders the startup banner centered to the terminal width.
func PrintBanner() {
	w := termWidth()
	fmt.Println()
	for _, line := range bannerLines {
		fmt.Println(colorNeonCyan + colorBold + center(line, w) + colorReset)
	}
	fmt.Println(colorNeonMag + center("medical product assistant", w) + colorReset)
	fmt.Println(colorCyan + center(fmt.Sprintf("go %s | %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH), w) + colorReset)
	fmt.Println()
}

// Uptime reports how long the process has been running.
func Uptime() time.Duration {
	return time.Since(startTime)
}
