// The client is a thin line pipe: one goroutine prints everything the
// server sends, the main loop forwards typed lines verbatim.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"
)

func main() {
	host := flag.String("host", "127.0.0.1", "server host")
	port := flag.Int("port", 4000, "server port")
	flag.Parse()

	conn, err := net.Dial("tcp", net.JoinHostPort(*host, strconv.Itoa(*port)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect:", err)
		os.Exit(1)
	}
	defer conn.Close()

	go func() {
		sc := bufio.NewScanner(conn)
		for sc.Scan() {
			fmt.Println(sc.Text())
		}
		fmt.Fprintln(os.Stderr, "disconnected")
		os.Exit(0)
	}()

	fmt.Println("Connected. Type commands like LOGIN <name>, MSG <text>, WHO, DM <user> <text>, PING")

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		line := in.Text()
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(conn, line); err != nil {
			fmt.Fprintln(os.Stderr, "send:", err)
			break
		}
	}
}
