package checkout

type State string

const (
	StateIdle                State = "idle"
	StateFormValid           State = "form_valid"
	StateOrderCreated        State = "order_created"
	StateGatewayOrderCreated State = "gateway_order_created"
	StateWidgetOpen          State = "widget_open"
	StateVerifying           State = "verifying"
	StateConfirmed           State = "confirmed"
	StateCompleted           State = "completed"
	StateFailed              State = "failed"
)

func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateCompleted || s == StateFailed
}

// String representation (for logging)
func (s State) String() string { return string(s) }
