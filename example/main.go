package main

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	"github.com/jfk9w-go/flu"

	"github.com/adriangalilea/tghtml"
	"github.com/sirupsen/logrus"
)

// Interactive wrapper around tghtml.Transform: type or pipe HTML, one
// message per line, and get Telegram-ready HTML back.
//
// You can launch this example by simply doing:
//   cd example/ && go run main.go < messages.html
func main() {
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			for _, page := range (tghtml.Pager{}).Split(tghtml.Transform(scanner.Text())) {
				fmt.Println(page)
			}
		}
		if err := scanner.Err(); err != nil {
			logrus.Fatal(err)
		}
		os.Exit(0)
	}()

	flu.AwaitSignal(syscall.SIGINT, syscall.SIGTERM)
}
