/*
File    : symstatic/cmd/komodo/main.go

Package main is komodo's command-line entry point. It follows the
teacher interpreter's main.go dispatch: a plain os.Args switch (no flag
package ceremony) between file execution, an REPL-per-connection TCP
server, and the default interactive prompt, with fatih/color marking
errors in red and banners in cyan exactly as the teacher does.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/danilopedraza/symstatic/eval"
	"github.com/danilopedraza/symstatic/parser"
	"github.com/danilopedraza/symstatic/repl"
	"github.com/danilopedraza/symstatic/weeder"
)

const version = "v0.1.0"

var banner = `
  _                        _
 | | _____  _ __ ___   ___ __| | ___
 | |/ / _ \| '_ ' _ \ / _ \ / _' |/ _ \
 |   < (_) | | | | | | (_) | (_| | (_) |
 |_|\_\___/|_| |_| |_|\___/ \__,_|\___/
`

const prompt = "komodo >>> "

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			cyanColor.Printf("komodo %s\n", version)
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "usage: komodo server <port>")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(os.Args[1])
			return
		}
	}

	session := repl.New(banner, version, prompt)
	if err := session.Start(os.Stdin, os.Stdout); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showHelp() {
	cyanColor.Println("komodo - a small expression-oriented language")
	cyanColor.Println()
	cyanColor.Println("usage:")
	fmt.Println("  komodo                 start the interactive prompt")
	fmt.Println("  komodo <path>          execute a .komodo source file")
	fmt.Println("  komodo server <port>   serve one REPL session per TCP connection")
	fmt.Println("  komodo --help          show this message")
	fmt.Println("  komodo --version       show the version")
}

// runFile reads, parses, weeds and evaluates path. Any positioned
// error is reported as "path:line:col: kind: msg" to stderr and exits
// non-zero; success exits 0.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}

	if err := run(string(src), path, os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%s:%s\n", path, err)
		os.Exit(1)
	}
}

// run parses, weeds and evaluates every top-level form of src in
// order against a single Evaluator, stopping at the first error.
func run(src, path string, out *os.File) error {
	p := parser.New(src)
	nodes, err := p.Program()
	if err != nil {
		return err
	}

	e := eval.New()
	e.SetWriter(out)
	for _, node := range nodes {
		woven, err := weeder.Weed(node)
		if err != nil {
			return err
		}
		if _, err := e.Eval(woven); err != nil {
			return err
		}
	}
	return nil
}

// startServer listens on port and serves one REPL session per
// accepted connection, exactly as the teacher interpreter's
// startServer/handleClient pair, generalized to komodo's evaluator.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("komodo REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "server: accept: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	session := repl.New(banner, version, prompt)
	session.Start(conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
