package winapi

// Window messages
const (
	WMSetCursor        uint32 = 0x0020
	WMGetMinMaxInfo    uint32 = 0x0024
	WMSize             uint32 = 0x0005
	WMWindowPosChanged uint32 = 0x0047
	WMNCCalcSize       uint32 = 0x0083
	WMNCHitTest        uint32 = 0x0084
	WMNCPaint          uint32 = 0x0085
	WMNCActivate       uint32 = 0x0086
	WMNCMouseMove      uint32 = 0x00A0
	WMNCLButtonDown    uint32 = 0x00A1
	WMNCLButtonUp      uint32 = 0x00A2
	WMNCLButtonDblClk  uint32 = 0x00A3
	WMExitSizeMove     uint32 = 0x0232
	WMDPIChanged       uint32 = 0x02E0
)

// Hit-test result codes (HT*)
const (
	HTClient      uintptr = 1
	HTCaption     uintptr = 2
	HTSysMenu     uintptr = 3
	HTMinButton   uintptr = 8
	HTMaxButton   uintptr = 9
	HTLeft        uintptr = 10
	HTRight       uintptr = 11
	HTTop         uintptr = 12
	HTTopLeft     uintptr = 13
	HTTopRight    uintptr = 14
	HTBottom      uintptr = 15
	HTBottomLeft  uintptr = 16
	HTBottomRight uintptr = 17
	HTClose       uintptr = 20
)

// Window style bits and GetWindowLong indices
const (
	GWLStyle int32 = -16

	WSCaption    uint32 = 0x00C00000
	WSThickFrame uint32 = 0x00040000
)

// SetWindowPos flags
const (
	SWPNoSize       uint32 = 0x0001
	SWPNoMove       uint32 = 0x0002
	SWPFrameChanged uint32 = 0x0020
)

// ShowWindow commands (SW*)
const (
	SWHide     int32 = 0
	SWNormal   int32 = 1
	SWMaximize int32 = 3
	SWShow     int32 = 5
	SWMinimize int32 = 6
	SWRestore  int32 = 9
)

// Standard cursor ids (IDC*)
const (
	IDCArrow    uint16 = 32512
	IDCSizeNWSE uint16 = 32642
	IDCSizeNESW uint16 = 32643
	IDCSizeWE   uint16 = 32644
	IDCSizeNS   uint16 = 32645
	IDCHand     uint16 = 32649
)

// MonitorFromWindow fallback policies
const (
	MonitorDefaultToNull    uint32 = 0
	MonitorDefaultToPrimary uint32 = 1
	MonitorDefaultToNearest uint32 = 2
)

// DWM window attributes and their values
const (
	DWMWANCRenderingPolicy        uint32 = 2
	DWMWAWindowCornerPreference   uint32 = 33

	DWMNCRPDisabled uint32 = 2

	DWMWCPDefault    uint32 = 0
	DWMWCPDoNotRound uint32 = 1
	DWMWCPRound      uint32 = 2
	DWMWCPRoundSmall uint32 = 3
)

// DWM_BLURBEHIND flags
const (
	DWMBBEnable                uint32 = 0x00000001
	DWMBBBlurRegion            uint32 = 0x00000002
	DWMBBTransitionOnMaximized uint32 = 0x00000004
)

// Window procedure index for SetWindowLongPtr
const GWLPWndProc int32 = -4
