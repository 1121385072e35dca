package schema

// Channel names for the operations exposed across the process boundary
// between the settings panel and the host daemon. The panel itself only
// uses the get/set pair; the remaining channels are declared here for
// the other wavebar components (tray menu, hotkey handler) that share
// this vocabulary.
const (
	ChannelGetSettings       = "get-settings"
	ChannelSetSettings       = "set-settings"
	ChannelGetAudioDevices   = "get-audio-devices"
	ChannelToggleVisualizer  = "toggle-visualizer"
	ChannelSetPosition       = "set-position"
	ChannelSetOpacity        = "set-opacity"
	ChannelSetVisualizerMode = "set-visualizer-mode"
)
