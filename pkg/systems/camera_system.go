package systems

import (
	"math"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// AxisCameraYaw 镜头水平旋转输入轴
const AxisCameraYaw = "CameraYaw"

// CameraSystem 第三人称环绕镜头
// 跟随目标实体，根据输入旋转，并向移动系统提供前方/右方向量
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
	input         InputProvider
}

// NewCameraSystem 创建镜头系统，同时创建镜头实体
//
// 参数：
//   - em: 实体管理器
//   - target: 跟随的实体（玩家）
//   - input: 镜头旋转输入，可为 nil（镜头不旋转）
//   - tuning: 镜头参数
func NewCameraSystem(em *ecs.EntityManager, target ecs.EntityID, input InputProvider, tuning config.CameraTuning) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		input:         input,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Target:   target,
		Yaw:      0,
		Pitch:    tuning.Pitch,
		Distance: tuning.Distance,
		YawSpeed: tuning.YawSpeed,
	})
	cs.Update(0)

	return cs
}

// Entity 返回镜头实体ID
func (cs *CameraSystem) Entity() ecs.EntityID {
	return cs.cameraEntity
}

func (cs *CameraSystem) camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// Update 处理镜头旋转并重新计算镜头位置
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.camera()
	if cam == nil {
		return
	}

	if cs.input != nil {
		cam.Yaw = math.Mod(cam.Yaw+cs.input.Axis(AxisCameraYaw)*cam.YawSpeed*dt, 360)
	}

	target := mgl64.Vec3{}
	if transform, ok := ecs.GetComponent[*components.TransformComponent](cs.entityManager, cam.Target); ok {
		target = transform.Position
	}
	cam.Position = target.Sub(cs.Forward().Mul(cam.Distance))
}

// SetYaw 直接设置镜头水平角（度）
func (cs *CameraSystem) SetYaw(yaw float64) {
	if cam := cs.camera(); cam != nil {
		cam.Yaw = yaw
	}
}

// Yaw 返回镜头水平角（度）
func (cs *CameraSystem) Yaw() float64 {
	if cam := cs.camera(); cam != nil {
		return cam.Yaw
	}
	return 0
}

// Forward 镜头前方向量（包含俯视角）
func (cs *CameraSystem) Forward() mgl64.Vec3 {
	cam := cs.camera()
	if cam == nil {
		return mgl64.Vec3{0, 0, 1}
	}
	yaw := mgl64.DegToRad(cam.Yaw)
	pitch := mgl64.DegToRad(cam.Pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		-math.Sin(pitch),
		math.Cos(yaw) * math.Cos(pitch),
	}
}

// Right 镜头右方向量（始终水平）
func (cs *CameraSystem) Right() mgl64.Vec3 {
	cam := cs.camera()
	if cam == nil {
		return mgl64.Vec3{1, 0, 0}
	}
	yaw := mgl64.DegToRad(cam.Yaw)
	return mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}
