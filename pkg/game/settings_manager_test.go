package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	// 降级模式使用默认设置
	settings := sm.GetSettings()
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}

	// 降级模式下 Save 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
}

// TestSettingsSaveAndLoad 测试设置的保存和重新加载
func TestSettingsSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_whackzombie_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	// 修改并保存
	sm.SetSoundEnabled(false)
	sm.SetSoundVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例应加载到保存的值
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() (reload) error: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundEnabled {
		t.Error("SoundEnabled: got true, want false after reload")
	}
	if settings.SoundVolume != 0.3 {
		t.Errorf("SoundVolume: got %v, want 0.3 after reload", settings.SoundVolume)
	}
}

// TestSetSoundVolumeClamps 测试音量范围限制
func TestSetSoundVolumeClamps(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetSoundVolume(1.5)
	if got := sm.GetSettings().SoundVolume; got != 1.0 {
		t.Errorf("SoundVolume after set 1.5: got %v, want 1.0", got)
	}

	sm.SetSoundVolume(-0.2)
	if got := sm.GetSettings().SoundVolume; got != 0.0 {
		t.Errorf("SoundVolume after set -0.2: got %v, want 0.0", got)
	}
}
