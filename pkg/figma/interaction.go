package figma

// Interaction is a prototyping behavior: when Trigger fires, Actions run in order.
type Interaction struct {
	// Trigger is nil for interactions whose trigger was removed in the editor.
	Trigger Trigger  `json:"trigger,omitempty"`
	Actions []Action `json:"actions"`
}

// TriggerType is the wire discriminant of a Trigger.
type TriggerType string

const (
	TriggerOnClick      TriggerType = "ON_CLICK"
	TriggerOnHover      TriggerType = "ON_HOVER"
	TriggerOnPress      TriggerType = "ON_PRESS"
	TriggerOnDrag       TriggerType = "ON_DRAG"
	TriggerOnMediaEnd   TriggerType = "ON_MEDIA_END"
	TriggerAfterTimeout TriggerType = "AFTER_TIMEOUT"
	TriggerMouseEnter   TriggerType = "MOUSE_ENTER"
	TriggerMouseLeave   TriggerType = "MOUSE_LEAVE"
	TriggerMouseUp      TriggerType = "MOUSE_UP"
	TriggerMouseDown    TriggerType = "MOUSE_DOWN"
	TriggerOnKeyDown    TriggerType = "ON_KEY_DOWN"
	TriggerOnMediaHit   TriggerType = "ON_MEDIA_HIT"
)

// Trigger is the user event that starts an interaction.
type Trigger interface {
	isTrigger()
}

// SimpleTrigger is a trigger with no parameters.
type SimpleTrigger struct {
	Type TriggerType `json:"-" figma:"tag"`
}

// AfterTimeoutTrigger fires once Timeout seconds have passed.
type AfterTimeoutTrigger struct {
	Timeout float64 `json:"timeout"`
}

// MouseTrigger fires on a pointer transition, optionally after Delay seconds.
type MouseTrigger struct {
	Type  TriggerType `json:"-" figma:"tag"`
	Delay float64     `json:"delay,omitempty" default:"0"`
}

// KeyDevice is the input device a key trigger listens on.
type KeyDevice string

const (
	DeviceKeyboard          KeyDevice = "KEYBOARD"
	DeviceXboxOne           KeyDevice = "XBOX_ONE"
	DevicePS4               KeyDevice = "PS4"
	DeviceSwitchPro         KeyDevice = "SWITCH_PRO"
	DeviceUnknownController KeyDevice = "UNKNOWN_CONTROLLER"
)

// KeyDownTrigger fires when every key in KeyCodes is held down.
type KeyDownTrigger struct {
	Device   KeyDevice `json:"device"`
	KeyCodes []int     `json:"keyCodes"`
}

// MediaHitTrigger fires when playback reaches MediaHitTime seconds.
type MediaHitTrigger struct {
	MediaHitTime float64 `json:"mediaHitTime"`
}

func (SimpleTrigger) isTrigger()       {}
func (AfterTimeoutTrigger) isTrigger() {}
func (MouseTrigger) isTrigger()        {}
func (KeyDownTrigger) isTrigger()      {}
func (MediaHitTrigger) isTrigger()     {}

func (t SimpleTrigger) MarshalJSON() ([]byte, error) {
	type plain SimpleTrigger
	return marshalVariant(t, plain(t))
}

func (t AfterTimeoutTrigger) MarshalJSON() ([]byte, error) {
	type plain AfterTimeoutTrigger
	return marshalVariant(t, plain(t))
}

func (t MouseTrigger) MarshalJSON() ([]byte, error) {
	type plain MouseTrigger
	return marshalVariant(t, plain(t))
}

func (t KeyDownTrigger) MarshalJSON() ([]byte, error) {
	type plain KeyDownTrigger
	return marshalVariant(t, plain(t))
}

func (t MediaHitTrigger) MarshalJSON() ([]byte, error) {
	type plain MediaHitTrigger
	return marshalVariant(t, plain(t))
}

// ActionType is the "type" discriminant of an Action.
type ActionType string

const (
	ActionBack            ActionType = "BACK"
	ActionClose           ActionType = "CLOSE"
	ActionNode            ActionType = "NODE"
	ActionSetVariable     ActionType = "SET_VARIABLE"
	ActionSetVariableMode ActionType = "SET_VARIABLE_MODE"
	ActionConditional     ActionType = "CONDITIONAL"
)

// OpenURLSentinelKey is the literal key that marks an OpenURLAction.
const OpenURLSentinelKey = "OPEN_URL_ACTION_TYPE"

// Action is something an interaction does. Every variant is discriminated
// by the "type" key except OpenURLAction, which carries the literal
// OPEN_URL_ACTION_TYPE: "URL" pair instead.
type Action interface {
	isAction()
}

// SimpleAction navigates back or closes the current overlay.
type SimpleAction struct {
	Type ActionType `json:"-" figma:"tag"`
}

// OpenURLAction opens an external page.
type OpenURLAction struct {
	URL          string `json:"url"`
	OpenInNewTab bool   `json:"openInNewTab,omitempty" default:"false"`
}

// Navigation is how a NodeAction moves to its destination.
type Navigation string

const (
	NavigateTo Navigation = "NAVIGATE"
	SwapWith   Navigation = "SWAP"
	OverlayOn  Navigation = "OVERLAY"
	ScrollTo   Navigation = "SCROLL_TO"
	ChangeTo   Navigation = "CHANGE_TO"
)

// NodeAction moves the prototype to another node.
type NodeAction struct {
	// DestinationID is empty when the destination was deleted.
	DestinationID              string     `json:"destinationId,omitempty"`
	Navigation                 Navigation `json:"navigation"`
	Transition                 Transition `json:"transition,omitempty"`
	PreserveScrollPosition     bool       `json:"preserveScrollPosition,omitempty" default:"false"`
	OverlayRelativePosition    *Vector    `json:"overlayRelativePosition,omitempty"`
	ResetVideoPosition         bool       `json:"resetVideoPosition,omitempty" default:"false"`
	ResetScrollPosition        bool       `json:"resetScrollPosition,omitempty" default:"false"`
	ResetInteractiveComponents bool       `json:"resetInteractiveComponents,omitempty" default:"false"`
}

// SetVariableAction assigns a value to a variable.
type SetVariableAction struct {
	VariableID    string        `json:"variableId"`
	VariableValue *VariableData `json:"variableValue,omitempty"`
}

// SetVariableModeAction switches a variable collection to another mode.
type SetVariableModeAction struct {
	VariableCollectionID string `json:"variableCollectionId"`
	VariableModeID       string `json:"variableModeId"`
}

// ConditionalAction runs the actions of the first block whose condition holds.
type ConditionalAction struct {
	ConditionalBlocks []ConditionalBlock `json:"conditionalBlocks"`
}

// ConditionalBlock is one branch of a ConditionalAction. A nil Condition is
// the else branch.
type ConditionalBlock struct {
	Condition *VariableData `json:"condition,omitempty"`
	Actions   []Action      `json:"actions"`
}

func (SimpleAction) isAction()          {}
func (OpenURLAction) isAction()         {}
func (NodeAction) isAction()            {}
func (SetVariableAction) isAction()     {}
func (SetVariableModeAction) isAction() {}
func (ConditionalAction) isAction()     {}

func (a SimpleAction) MarshalJSON() ([]byte, error) {
	type plain SimpleAction
	return marshalVariant(a, plain(a))
}

func (a OpenURLAction) MarshalJSON() ([]byte, error) {
	type plain OpenURLAction
	return marshalVariant(a, plain(a))
}

func (a NodeAction) MarshalJSON() ([]byte, error) {
	type plain NodeAction
	return marshalVariant(a, plain(a))
}

func (a SetVariableAction) MarshalJSON() ([]byte, error) {
	type plain SetVariableAction
	return marshalVariant(a, plain(a))
}

func (a SetVariableModeAction) MarshalJSON() ([]byte, error) {
	type plain SetVariableModeAction
	return marshalVariant(a, plain(a))
}

func (a ConditionalAction) MarshalJSON() ([]byte, error) {
	type plain ConditionalAction
	return marshalVariant(a, plain(a))
}

// TransitionType is the wire discriminant of a Transition.
type TransitionType string

const (
	TransitionDissolve      TransitionType = "DISSOLVE"
	TransitionSmartAnimate  TransitionType = "SMART_ANIMATE"
	TransitionScrollAnimate TransitionType = "SCROLL_ANIMATE"
	TransitionMoveIn        TransitionType = "MOVE_IN"
	TransitionMoveOut       TransitionType = "MOVE_OUT"
	TransitionPush          TransitionType = "PUSH"
	TransitionSlideIn       TransitionType = "SLIDE_IN"
	TransitionSlideOut      TransitionType = "SLIDE_OUT"
)

// Transition animates a NodeAction.
type Transition interface {
	isTransition()
}

// SimpleTransition is a transition without a direction.
type SimpleTransition struct {
	Type     TransitionType `json:"-" figma:"tag"`
	Easing   Easing         `json:"easing"`
	Duration float64        `json:"duration"`
}

// TransitionDirection is the side a directional transition moves towards.
type TransitionDirection string

const (
	DirectionLeft   TransitionDirection = "LEFT"
	DirectionRight  TransitionDirection = "RIGHT"
	DirectionTop    TransitionDirection = "TOP"
	DirectionBottom TransitionDirection = "BOTTOM"
)

// DirectionalTransition slides, pushes or moves the destination in or out.
type DirectionalTransition struct {
	Type      TransitionType      `json:"-" figma:"tag"`
	Easing    Easing              `json:"easing"`
	Duration  float64             `json:"duration"`
	Direction TransitionDirection `json:"direction"`
	// MatchLayers animates layers with matching names between the two frames.
	MatchLayers bool `json:"matchLayers"`
}

func (SimpleTransition) isTransition()      {}
func (DirectionalTransition) isTransition() {}

func (t SimpleTransition) MarshalJSON() ([]byte, error) {
	type plain SimpleTransition
	return marshalVariant(t, plain(t))
}

func (t DirectionalTransition) MarshalJSON() ([]byte, error) {
	type plain DirectionalTransition
	return marshalVariant(t, plain(t))
}

// EasingType names an animation curve.
type EasingType string

const (
	EaseIn                EasingType = "EASE_IN"
	EaseOut               EasingType = "EASE_OUT"
	EaseInAndOut          EasingType = "EASE_IN_AND_OUT"
	EaseLinear            EasingType = "LINEAR"
	EaseInBack            EasingType = "EASE_IN_BACK"
	EaseOutBack           EasingType = "EASE_OUT_BACK"
	EaseInAndOutBack      EasingType = "EASE_IN_AND_OUT_BACK"
	EaseCustomCubicBezier EasingType = "CUSTOM_CUBIC_BEZIER"
	EaseGentleSpring      EasingType = "GENTLE_SPRING"
	EaseGentle            EasingType = "GENTLE"
	EaseQuick             EasingType = "QUICK"
	EaseBouncy            EasingType = "BOUNCY"
	EaseSlow              EasingType = "SLOW"
	EaseCustomSpring      EasingType = "CUSTOM_SPRING"
)

// Easing is the animation curve of a transition. The custom parameters are
// set only for the matching custom easing type.
type Easing struct {
	Type                      EasingType   `json:"type"`
	EasingFunctionCubicBezier *CubicBezier `json:"easingFunctionCubicBezier,omitempty"`
	EasingFunctionSpring      *Spring      `json:"easingFunctionSpring,omitempty"`
}

// CubicBezier holds the two control points of a CSS-style cubic-bezier curve.
type CubicBezier struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Spring holds the physical parameters of a spring curve.
type Spring struct {
	Mass      float64 `json:"mass"`
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
}

// FlowStartingPoint is where a prototype flow starts in presentation view.
type FlowStartingPoint struct {
	NodeID string `json:"nodeId"`
	Name   string `json:"name"`
}

func init() {
	registerEnum(
		TriggerOnClick, TriggerOnHover, TriggerOnPress, TriggerOnDrag, TriggerOnMediaEnd,
		TriggerAfterTimeout, TriggerMouseEnter, TriggerMouseLeave, TriggerMouseUp, TriggerMouseDown,
		TriggerOnKeyDown, TriggerOnMediaHit,
	)
	registerEnum(DeviceKeyboard, DeviceXboxOne, DevicePS4, DeviceSwitchPro, DeviceUnknownController)
	registerEnum(ActionBack, ActionClose, ActionNode, ActionSetVariable, ActionSetVariableMode, ActionConditional)
	registerEnum(NavigateTo, SwapWith, OverlayOn, ScrollTo, ChangeTo)
	registerEnum(
		TransitionDissolve, TransitionSmartAnimate, TransitionScrollAnimate,
		TransitionMoveIn, TransitionMoveOut, TransitionPush, TransitionSlideIn, TransitionSlideOut,
	)
	registerEnum(DirectionLeft, DirectionRight, DirectionTop, DirectionBottom)
	registerEnum(
		EaseIn, EaseOut, EaseInAndOut, EaseLinear,
		EaseInBack, EaseOutBack, EaseInAndOutBack, EaseCustomCubicBezier,
		EaseGentleSpring, EaseGentle, EaseQuick, EaseBouncy, EaseSlow, EaseCustomSpring,
	)

	registerUnion[Trigger](Inline, "type", "",
		variant[SimpleTrigger](
			string(TriggerOnClick), string(TriggerOnHover), string(TriggerOnPress),
			string(TriggerOnDrag), string(TriggerOnMediaEnd),
		),
		variant[AfterTimeoutTrigger](string(TriggerAfterTimeout)),
		variant[MouseTrigger](
			string(TriggerMouseEnter), string(TriggerMouseLeave),
			string(TriggerMouseUp), string(TriggerMouseDown),
		),
		variant[KeyDownTrigger](string(TriggerOnKeyDown)),
		variant[MediaHitTrigger](string(TriggerOnMediaHit)),
	)

	registerUnion[Action](Inline, "type", "",
		variant[SimpleAction](string(ActionBack), string(ActionClose)),
		variant[NodeAction](string(ActionNode)),
		variant[SetVariableAction](string(ActionSetVariable)),
		variant[SetVariableModeAction](string(ActionSetVariableMode)),
		variant[ConditionalAction](string(ActionConditional)),
		sentinel[OpenURLAction](OpenURLSentinelKey, "URL"),
	)

	registerUnion[Transition](Inline, "type", "",
		variant[SimpleTransition](
			string(TransitionDissolve), string(TransitionSmartAnimate), string(TransitionScrollAnimate),
		),
		variant[DirectionalTransition](
			string(TransitionMoveIn), string(TransitionMoveOut), string(TransitionPush),
			string(TransitionSlideIn), string(TransitionSlideOut),
		),
	)
}
