package colorscheme

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/shade/internal/logging"
	"github.com/godbus/dbus/v5"
)

// DefaultDebounce coalesces the burst of SettingChanged signals a desktop
// emits when the user flips the appearance switch.
const DefaultDebounce = 100 * time.Millisecond

// settingChangedMatch selects the portal's SettingChanged signal.
var settingChangedMatch = fmt.Sprintf(
	"type='signal',interface='%s',member='SettingChanged',path='%s'",
	settingsInterface, portalPath,
)

// PortalSource listens for SettingChanged on the XDG Desktop Portal using a
// private session bus connection.
func PortalSource(debounce time.Duration) Source {
	return func(ctx context.Context, changed func()) (func(), error) {
		log := logging.FromContext(ctx)

		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return nil, fmt.Errorf("connect session bus: %w", err)
		}

		if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, settingChangedMatch).Err; err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("add portal signal match: %w", err)
		}

		signals := make(chan *dbus.Signal, 8)
		conn.Signal(signals)

		ctx, cancel := context.WithCancel(ctx)
		d := newDebouncer(debounce, changed)
		done := make(chan struct{})

		go func() {
			defer close(done)
			for {
				select {
				case sig, ok := <-signals:
					if !ok || sig == nil {
						return
					}
					if isColorSchemeSignal(sig) {
						d.Trigger()
					}
				case <-ctx.Done():
					return
				}
			}
		}()

		log.Debug().Msg("color scheme: listening for portal SettingChanged")

		return func() {
			cancel()
			<-done
			d.Stop()
			conn.RemoveSignal(signals)
			_ = conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, settingChangedMatch).Err
			if err := conn.Close(); err != nil {
				log.Debug().Err(err).Msg("color scheme: failed to close portal connection")
			}
		}, nil
	}
}

// isColorSchemeSignal reports whether sig is SettingChanged(appearance, color-scheme, _).
func isColorSchemeSignal(sig *dbus.Signal) bool {
	if sig.Name != settingsInterface+".SettingChanged" || len(sig.Body) < 2 {
		return false
	}
	namespace, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	return namespace == appearanceNamespace && key == colorSchemeKey
}
