package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joomcode/errorx"
	"github.com/mgnsk/staticserve/internal/fileserver"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	dir := flag.String("dir", "", "directory to serve (default: parent of the executable's directory)")
	flag.Parse()

	if env := os.Getenv("PORT"); env != "" {
		p, err := strconv.Atoi(env)
		if err != nil {
			log.Fatal(errorx.Decorate(err, "invalid PORT %q", env))
		}
		*port = p
	}

	root, err := resolveRoot(*dir)
	if err != nil {
		log.Fatal(err)
	}

	s := fileserver.New(fmt.Sprintf(":%d", *port), root)
	if err := s.Start(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Serving %s on http://localhost:%d/", root, *port)
	log.Print("Press Ctrl+C to stop the server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Print("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Println(err)
	}
}

// resolveRoot validates dir, defaulting to the parent of the directory
// holding the executable.
func resolveRoot(dir string) (string, error) {
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errorx.Decorate(err, "locate executable")
		}
		dir = filepath.Dir(filepath.Dir(exe))
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", errorx.Decorate(err, "root directory")
	}
	if !info.IsDir() {
		return "", errorx.IllegalArgument.New("root %s is not a directory", dir)
	}

	return dir, nil
}
