package figma

// EffectType is the wire discriminant of an Effect.
type EffectType string

const (
	EffectInnerShadow    EffectType = "INNER_SHADOW"
	EffectDropShadow     EffectType = "DROP_SHADOW"
	EffectLayerBlur      EffectType = "LAYER_BLUR"
	EffectBackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// Effect is a visual effect applied to a node: a ShadowEffect or a
// BlurEffect, discriminated by an inline "type" key.
type Effect interface {
	isEffect()
}

// ShadowEffect is a drop or inner shadow.
type ShadowEffect struct {
	Type      EffectType `json:"-" figma:"tag"`
	Visible   bool       `json:"visible" default:"true"`
	Radius    float64    `json:"radius"`
	Color     Color      `json:"color"`
	BlendMode BlendMode  `json:"blendMode"`
	Offset    Vector     `json:"offset"`
	// Spread grows (or shrinks, when negative) the shadow before blurring.
	Spread float64 `json:"spread,omitempty" default:"0"`
	// ShowShadowBehindNode only applies to drop shadows.
	ShowShadowBehindNode bool `json:"showShadowBehindNode,omitempty" default:"false"`
}

// BlurEffect blurs the layer itself or whatever is behind it.
type BlurEffect struct {
	Type    EffectType `json:"-" figma:"tag"`
	Visible bool       `json:"visible" default:"true"`
	Radius  float64    `json:"radius"`
}

func (ShadowEffect) isEffect() {}
func (BlurEffect) isEffect()   {}

func (e ShadowEffect) MarshalJSON() ([]byte, error) {
	type plain ShadowEffect
	return marshalVariant(e, plain(e))
}

func (e BlurEffect) MarshalJSON() ([]byte, error) {
	type plain BlurEffect
	return marshalVariant(e, plain(e))
}

func init() {
	registerEnum(EffectInnerShadow, EffectDropShadow, EffectLayerBlur, EffectBackgroundBlur)

	registerUnion[Effect](Inline, "type", "",
		variant[ShadowEffect](string(EffectDropShadow), string(EffectInnerShadow)),
		variant[BlurEffect](string(EffectLayerBlur), string(EffectBackgroundBlur)),
	)
}
