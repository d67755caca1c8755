package components

// AnimatorComponent 动画参数表
// 逻辑系统只写入参数，渲染端读取参数决定播放哪段动画
type AnimatorComponent struct {
	Ints  map[string]int
	Bools map[string]bool
}

// NewAnimatorComponent 创建空的动画参数表
func NewAnimatorComponent() *AnimatorComponent {
	return &AnimatorComponent{
		Ints:  make(map[string]int),
		Bools: make(map[string]bool),
	}
}

// SetInteger 设置整数参数
func (a *AnimatorComponent) SetInteger(name string, value int) {
	a.Ints[name] = value
}

// SetBool 设置布尔参数
func (a *AnimatorComponent) SetBool(name string, value bool) {
	a.Bools[name] = value
}

// GetInteger 读取整数参数，不存在时返回 0
func (a *AnimatorComponent) GetInteger(name string) int {
	return a.Ints[name]
}

// GetBool 读取布尔参数，不存在时返回 false
func (a *AnimatorComponent) GetBool(name string) bool {
	return a.Bools[name]
}
