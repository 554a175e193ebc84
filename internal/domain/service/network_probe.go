package service

import "context"

// NetworkState is the last observed reachability of the upstream network.
type NetworkState string

const (
	NetworkConnected    NetworkState = "connected"
	NetworkDisconnected NetworkState = "disconnected"
	NetworkUnknown      NetworkState = "unknown"
)

// NetworkProbe checks whether the configured upstream endpoint is reachable.
type NetworkProbe interface {
	Check(ctx context.Context) NetworkState
}
