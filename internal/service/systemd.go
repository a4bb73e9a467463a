package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const Name = "clipmon.service"

const serviceTemplate = `
[Unit]
Description=ClipMon clipboard notifier
Documentation=https://github.com/labi-le/clipmon

PartOf=graphical-session.target

After=graphical-session.target

ConditionEnvironment=|WAYLAND_DISPLAY
ConditionEnvironment=|DISPLAY

[Service]
Type=simple
ExecStart=%s
Environment="PATH=%s"
Environment="DBUS_SESSION_BUS_ADDRESS=%s"
Restart=on-failure
RestartSec=10

StandardOutput=journal
StandardError=journal

[Install]
WantedBy=graphical-session.target
`

// Unit renders the systemd user unit for the executable at exePath.
func Unit(exePath, envPath, envDbus string) string {
	quotedPath := exePath
	if strings.Contains(exePath, " ") {
		quotedPath = fmt.Sprintf(`"%s"`, exePath)
	}

	return fmt.Sprintf(serviceTemplate, quotedPath, envPath, envDbus)
}

func InstallService(logger zerolog.Logger) error {
	envPath := os.Getenv("PATH")
	if envPath == "" {
		return fmt.Errorf("critical env missing: PATH is empty. Cannot install service")
	}

	envDbus := os.Getenv("DBUS_SESSION_BUS_ADDRESS")
	if envDbus == "" {
		return fmt.Errorf("critical env missing: DBUS_SESSION_BUS_ADDRESS is empty. Cannot install service")
	}

	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to detect executable path: %w", err)
	}

	exePath, err = filepath.EvalSymlinks(exePath)
	if err != nil {
		return fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	absPath, err := filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home dir: %w", err)
	}

	systemdDir := filepath.Join(homeDir, ".config", "systemd", "user")
	serviceFile := filepath.Join(systemdDir, Name)

	logger.Info().Msg("try to delete the old service instance")
	_ = runSystemctl(logger, "disable", "--now", Name)

	if err := os.MkdirAll(systemdDir, 0755); err != nil {
		return fmt.Errorf("failed to create systemd directory: %w", err)
	}

	if err := os.WriteFile(serviceFile, []byte(Unit(absPath, envPath, envDbus)), 0644); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}

	logger.Info().Str("path", serviceFile).Msg("service file created")

	for _, args := range [][]string{
		{"daemon-reload"},
		{"enable", Name},
		{"restart", Name},
	} {
		if err := runSystemctl(logger, args...); err != nil {
			return err
		}
	}

	logger.Info().Msg("service installed and started successfully")
	return nil
}

func runSystemctl(logger zerolog.Logger, args ...string) error {
	logger.Debug().Strs("args", args).Msg("executing systemctl")

	cmd := exec.Command("systemctl", append([]string{"--user"}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("systemctl %s failed: %w", strings.Join(args, " "), err)
	}
	return nil
}
