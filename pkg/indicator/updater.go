package indicator

//go:generate callbackgen -type Updater
type Updater struct {
	updateCallbacks []func(r Result)
}
