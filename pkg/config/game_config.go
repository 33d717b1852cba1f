package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 窗口配置常量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600
)

// GameConfigPath 嵌入配置文件路径
const GameConfigPath = "data/montociel.yaml"

// GameConfig 游戏模拟配置
//
// 包含力模型、玩家、地球（危险体）和云朵（障碍物）生成策略的全部常量。
// 像素单位的半径在使用时除以 Physics.Scale 换算为物理单位。
//
// 配置文件位置: data/montociel.yaml
type GameConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Hazard    HazardConfig    `yaml:"hazard"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// PhysicsConfig 力模型配置
type PhysicsConfig struct {
	// Gravity 引力常数 G（力与距离成反比，不是平方反比）
	Gravity float64 `yaml:"gravity"`
	// Epsilon 距离偏移，保证原点处不除零
	Epsilon float64 `yaml:"epsilon"`
	// Damping 每帧速度衰减系数（空气阻力）
	Damping float64 `yaml:"damping"`
	// MaxSpeed 速度上限
	MaxSpeed float64 `yaml:"maxSpeed"`
	// MinClampSpeed 低于此速度时不做钳制，避免方向失真
	MinClampSpeed float64 `yaml:"minClampSpeed"`
	// Scale 每个物理单位对应的像素数（像素 → 物理单位换算）
	Scale float64 `yaml:"scale"`
	// Density 所有刚体的密度，质量 = 密度 × πr²
	Density float64 `yaml:"density"`
}

// PlayerConfig 玩家（Montociel）配置
type PlayerConfig struct {
	RadiusPixels float64 `yaml:"radiusPixels"`
	SpawnX       float64 `yaml:"spawnX"`
	SpawnY       float64 `yaml:"spawnY"`
	// Spin 出生时的角速度（仅用于显示旋转）
	Spin float64 `yaml:"spin"`
	// ThrustPower 按住推进时的冲量系数
	ThrustPower float64 `yaml:"thrustPower"`
	// ThrustAngle 推进方向相对位置向量的旋转角（弧度）
	ThrustAngle float64 `yaml:"thrustAngle"`
	// JumpPower 撞击云朵后的弹跳冲量系数
	JumpPower float64 `yaml:"jumpPower"`
	// JumpAngle 弹跳方向相对位置向量的旋转角（弧度）
	JumpAngle float64 `yaml:"jumpAngle"`
}

// HazardConfig 地球配置
type HazardConfig struct {
	RadiusPixels float64 `yaml:"radiusPixels"`
}

// ObstaclesConfig 云朵配置
type ObstaclesConfig struct {
	RadiusPixels float64       `yaml:"radiusPixels"`
	Belt         BeltConfig    `yaml:"belt"`
	Emitter      EmitterConfig `yaml:"emitter"`
}

// SpeedRange 速度范围 [Min, Max)
type SpeedRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BeltConfig 开局环带：均匀分布在半径 Radius 的圆上
type BeltConfig struct {
	Count  int        `yaml:"count"`
	Radius float64    `yaml:"radius"`
	Speed  SpeedRange `yaml:"speed"`
}

// EmitterConfig 周期发射器：每 Interval 秒在半径 Radius 处随机角度生成 Count 朵云
type EmitterConfig struct {
	Count    int        `yaml:"count"`
	Radius   float64    `yaml:"radius"`
	Speed    SpeedRange `yaml:"speed"`
	Interval float64    `yaml:"interval"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Physics: PhysicsConfig{
			Gravity:       100,
			Epsilon:       1e-4,
			Damping:       0.95,
			MaxSpeed:      70,
			MinClampSpeed: 0.01,
			Scale:         15,
			Density:       1,
		},
		Player: PlayerConfig{
			RadiusPixels: 30,
			SpawnX:       10,
			SpawnY:       10,
			Spin:         0.4,
			ThrustPower:  0.8,
			ThrustAngle:  math.Pi / 2,
			JumpPower:    70,
			JumpAngle:    3 * math.Pi / 4,
		},
		Hazard: HazardConfig{
			RadiusPixels: 60,
		},
		Obstacles: ObstaclesConfig{
			RadiusPixels: 15,
			Belt: BeltConfig{
				Count:  10,
				Radius: 10,
				Speed:  SpeedRange{Min: 0, Max: 5},
			},
			Emitter: EmitterConfig{
				Count:    4,
				Radius:   1,
				Speed:    SpeedRange{Min: 1, Max: 5},
				Interval: 2,
			},
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/montociel.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置
//
// YAML 中未出现的字段保留默认值，因此配置文件只需写出要覆盖的项。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	p := c.Physics
	if p.Scale <= 0 {
		return fmt.Errorf("physics scale must be > 0, got %.3f", p.Scale)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("maxSpeed must be > 0, got %.3f", p.MaxSpeed)
	}
	if p.Damping <= 0 || p.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %.3f", p.Damping)
	}
	if p.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be > 0, got %g", p.Epsilon)
	}
	if p.MinClampSpeed < 0 {
		return fmt.Errorf("minClampSpeed must be >= 0, got %.3f", p.MinClampSpeed)
	}
	if p.Density <= 0 {
		return fmt.Errorf("density must be > 0, got %.3f", p.Density)
	}

	if c.Player.RadiusPixels <= 0 || c.Hazard.RadiusPixels <= 0 || c.Obstacles.RadiusPixels <= 0 {
		return fmt.Errorf("body radii must be > 0")
	}

	belt := c.Obstacles.Belt
	if belt.Count < 0 {
		return fmt.Errorf("belt count must be >= 0, got %d", belt.Count)
	}
	if err := belt.Speed.validate("belt"); err != nil {
		return err
	}

	emitter := c.Obstacles.Emitter
	if emitter.Count < 0 {
		return fmt.Errorf("emitter count must be >= 0, got %d", emitter.Count)
	}
	if emitter.Interval <= 0 {
		return fmt.Errorf("emitter interval must be > 0, got %.3f", emitter.Interval)
	}
	if err := emitter.Speed.validate("emitter"); err != nil {
		return err
	}

	return nil
}

func (r SpeedRange) validate(name string) error {
	if r.Min < 0 {
		return fmt.Errorf("%s speed min must be >= 0, got %.3f", name, r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s speed range invalid: min(%.3f) > max(%.3f)", name, r.Min, r.Max)
	}
	return nil
}

// ToUnits 将像素长度换算为物理单位
func (p PhysicsConfig) ToUnits(pixels float64) float64 {
	return pixels / p.Scale
}

// Mass 计算半径为 r（物理单位）的圆形刚体质量
func (p PhysicsConfig) Mass(radius float64) float64 {
	return p.Density * math.Pi * radius * radius
}
