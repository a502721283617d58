package main

import (
	"flag"
	"os"

	"k8s.io/klog/v2"

	"github.com/vanyingenzi/udukoresho/pkg/figure"
	"github.com/vanyingenzi/udukoresho/pkg/logmetrics"
	"github.com/vanyingenzi/udukoresho/pkg/report"
	"github.com/vanyingenzi/udukoresho/pkg/settings"
)

func main() {
	execDir := flag.String("dir", "", "override the exec_dir of the settings file")
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if flag.NArg() == 0 {
		klog.Error("Settings filename requested")
		klog.Flush()
		os.Exit(2)
	}

	s, err := settings.Load(flag.Arg(0))
	if err != nil {
		klog.Fatalf("Reading settings: %v", err)
	}
	if *execDir != "" {
		s.ExecDir = *execDir
	}
	klog.Infof("Exec dir: %q", s.ExecDir)
	klog.Infof("Experiments: %d", len(s.Experiments))
	klog.Infof("Max path count: %d", s.MaxPathCount)

	registry, err := s.Registry()
	if err != nil {
		klog.Fatalf("Building color registry: %v", err)
	}

	metrics, err := logmetrics.ExtractAll(s.Runs())
	if err != nil {
		klog.Fatalf("Extracting metrics: %v", err)
	}
	for _, m := range metrics {
		klog.V(2).Infof("%s: %d paths, %.0fs (%s)", m.Run.Implementation, m.Paths, m.TransferSeconds, m.Run.TimeFile)
		if m.Paths > s.MaxPathCount {
			klog.Warningf("%s: %d paths exceed max_path_count %d, drawn at full brightness",
				m.Run.ServerLog, m.Paths, s.MaxPathCount)
		}
	}

	cfg := report.Config{
		Style:        figure.Setup(s.Figure()),
		Dimensions:   s.Dimensions(),
		Registry:     registry,
		MaxPathCount: s.MaxPathCount,
	}
	if err := report.Generate(cfg, metrics, s.OutputDir()); err != nil {
		klog.Fatalf("Plotting: %v", err)
	}
	klog.Info("Everything's complete!")
}
