package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/chaos-io/cutout/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	outputDir := flag.String("output", "./output", "debug artifact dir, empty to disable")
	maxSide := flag.Int("max-side", 2048, "longest image side after downscale")
	flag.Parse()

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatal("failed to create output dir:", err)
		}

		// 每小时清一次过期的调试产物
		c := cron.New()
		dir := *outputDir
		_, err := c.AddFunc("@hourly", func() {
			pruneArtifacts(dir, 24*time.Hour)
		})
		if err != nil {
			log.Fatal("failed to schedule artifact pruning:", err)
		}
		c.Start()
		defer c.Stop()
	}

	srv := server.New(server.Config{
		MaxSide:      *maxSide,
		FetchTimeout: 45 * time.Second,
		OutputDir:    *outputDir,
	})

	slog.Info("listening", "addr", *addr)
	if err := srv.Router().Run(*addr); err != nil {
		log.Fatal("server exited:", err)
	}
}

// pruneArtifacts 删除 dir 下超过 maxAge 的文件
func pruneArtifacts(dir string, maxAge time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("prune artifacts", "dir", dir, "error", err)
		return
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	if removed > 0 {
		slog.Info("pruned artifacts", "dir", dir, "removed", removed)
	}
}
