// Package notify sends desktop notifications for session events
// using the notify-send command.
package notify

import (
	"os/exec"

	"github.com/vpncman/vpnc-manager/common"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// iconFor maps a notification type to its default icon name.
func iconFor(t NotificationType) string {
	switch t {
	case NotificationSuccess:
		return "network-vpn"
	case NotificationWarning:
		return "dialog-warning"
	case NotificationError:
		return "dialog-error"
	default:
		return "network-vpn"
	}
}

// urgencyFor maps a notification type to a notify-send urgency level.
func urgencyFor(t NotificationType) string {
	switch t {
	case NotificationError:
		return "critical"
	case NotificationWarning:
		return "normal"
	default:
		return "low"
	}
}

// Show displays a system notification using notify-send.
// Failures are logged, not propagated; notifications are best effort.
func Show(n Notification) {
	icon := n.Icon
	if icon == "" {
		icon = iconFor(n.Type)
	}

	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+icon,
		"--urgency="+urgencyFor(n.Type),
		n.Title,
		n.Message,
	)

	if err := cmd.Run(); err != nil {
		common.LogDebug("Error showing notification: %v", err)
	}
}

// Connected shows a notification when the VPN connects
func Connected(profileName string) {
	Show(Notification{
		Title:   "VPN Connected",
		Message: "Connected to " + profileName,
		Type:    NotificationSuccess,
		Icon:    "network-vpn",
	})
}

// Disconnected shows a notification when the VPN disconnects
func Disconnected(profileName string) {
	Show(Notification{
		Title:   "VPN Disconnected",
		Message: "Disconnected from " + profileName,
		Type:    NotificationInfo,
		Icon:    "network-vpn-disconnected",
	})
}

// Error shows a notification for session errors
func Error(profileName, errorMsg string) {
	Show(Notification{
		Title:   "Connection Error",
		Message: profileName + ": " + errorMsg,
		Type:    NotificationError,
		Icon:    "network-vpn-error",
	})
}
