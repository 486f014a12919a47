package modules

import (
	"context"

	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/extract"
	"github.com/indaco/cuppa/internal/segment"
	"github.com/indaco/cuppa/internal/trigger"
	"go.uber.org/zap"
)

const javaModule = "java"

// Java shows the installed Java version when the directory contains a JVM
// build file or Java sources/artifacts.
func Java(ctx context.Context, mc *Context) (*segment.Module, bool) {
	jc := mc.Config.GetJavaConfig()
	if jc.Disabled {
		mc.omit(javaModule, "disabled")
		return nil, false
	}

	isJavaProject := trigger.NewScanner(mc.FS).
		SetFiles(jc.DetectFiles...).
		SetExtensions(jc.DetectExtensions...).
		SetFolders(jc.DetectFolders...).
		SetScanDepth(*jc.ScanDepth).
		IsMatch(ctx, mc.Dir)
	if !isJavaProject {
		mc.omit(javaModule, "not a java project", zap.String("dir", mc.Dir))
		return nil, false
	}

	raw, err := mc.Java.JavaVersionOutput(ctx)
	if err != nil {
		mc.omit(javaModule, "toolchain unavailable", zap.Error(err))
		return nil, false
	}

	version, ok := extract.Extract(raw)
	if !ok {
		mc.omit(javaModule, "no version in toolchain output", zap.Int("output_len", len(raw)))
		return nil, false
	}

	m := JavaSegment(mc, jc, version)
	mc.Logger.Debug("segment rendered", zap.String("module", javaModule), zap.String("version", version))
	return m, true
}

// JavaSegment builds the styled java module for a formatted version.
func JavaSegment(mc *Context, jc config.JavaConfig, version string) *segment.Module {
	m := segment.NewModule(javaModule)
	m.SetStyle(mc.Style(javaModule, jc.Style, config.DefaultJavaStyle))
	m.NewSegment("symbol", jc.Symbol)
	m.NewSegment("version", version)
	return m
}
