package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
)

func main() {
	var port = flag.Uint("port", 8080, "port to listen on")
	var depth = flag.Int("depth", 6, "default analysis depth")
	flag.Parse()

	if *port == 0 || *port > 65535 {
		fmt.Println("invalid port number")
		os.Exit(1)
	}

	fmt.Printf("starting analysis server on :%d\n", *port)
	var app = newApplication(*depth)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), app); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
