package screenshot

import "testing"

func TestIsScreenshotName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Screen Shot 2024-01-01 at 3.00.00 PM.png", true},
		{"Screenshot 2024-06-30 101512.png", true},
		{"screenshot.jpg", true},
		{"SCREENSHOT.JPEG", true},
		{"my screenshot copy.heic", true},
		{"screenshot-2.tiff", true},
		{"screenshot.gif", true},
		{"screenshot.bmp", true},
		{"Screen Shot 2024-01-01.png", true}, // no-break space
		{"screen‑shot.png", true},            // non-breaking hyphen
		{"Screenshot.txt", false},                 // wrong extension
		{"screenshot.png.zip", false},
		{"vacation.png", false}, // no pattern match
		{"screen.png", false},
		{"shot.png", false},
		{"", false},
		{".png", false},
		{"screenshot", false}, // no extension
		{"\xff\xfescreenshot.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsScreenshotName(tt.name); got != tt.want {
				t.Errorf("IsScreenshotName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
