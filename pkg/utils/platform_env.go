package utils

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端布局运行（本地调试用）
const MobileEmulateEnv = "MONTOCIEL_MOBILE_EMULATE"
