package utils

import "bytes"

// processName 从 /proc/self/cmdline 的内容中取出进程名
// 参数以 NUL 分隔，只取第一个参数并去掉换行
func processName(cmdline []byte) string {
	if i := bytes.IndexByte(cmdline, 0); i >= 0 {
		cmdline = cmdline[:i]
	}
	return string(bytes.TrimSpace(cmdline))
}
