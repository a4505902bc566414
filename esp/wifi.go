package esp

import (
	"fmt"

	"i4.energy/across/espwifi/at"
)

const (
	maxSSIDLen     = 32
	maxPasswordLen = 63
)

// Mode is the WiFi operating mode.
type Mode int

const (
	ModeStation       Mode = 1
	ModeSoftAP        Mode = 2
	ModeSoftAPStation Mode = 3
)

// Encryption is the soft AP security scheme.
type Encryption int

const (
	EncryptionOpen       Encryption = 0
	EncryptionWPAPSK     Encryption = 2
	EncryptionWPA2PSK    Encryption = 3
	EncryptionWPAWPA2PSK Encryption = 4
)

// SoftAPConfig is the access point the module offers in soft AP mode.
type SoftAPConfig struct {
	SSID       string
	Password   string
	Channel    int
	Encryption Encryption
	// MaxConn and Hidden are sent only when MaxConn is set.
	MaxConn int
	Hidden  bool
}

// ScanField selects the columns of a scan listing.
type ScanField int

const (
	ScanEncryption ScanField = 1 << iota
	ScanSSID
	ScanRSSI
	ScanMAC
	ScanChannel

	ScanAll = ScanEncryption | ScanSSID | ScanRSSI | ScanMAC | ScanChannel
)

// Reset reboots the module. It completes when the firmware prints "ready";
// the boot banner before it is discarded. The module comes back in single
// connection mode.
func (d *Driver) Reset() error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdReset)
	return d.issue(CmdReset)
}

// Recovery restores factory settings. The module reboots afterwards.
func (d *Driver) Recovery() error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdRestore)
	return d.issue(CmdRecovery)
}

// SetMode selects station, soft AP or combined operation.
func (d *Driver) SetMode(mode Mode) error {
	if err := d.begin(); err != nil {
		return err
	}
	if mode < ModeStation || mode > ModeSoftAPStation {
		return fmt.Errorf("invalid wifi mode %d", mode)
	}
	d.cmd.Start(at.CmdWifiMode).Int(int(mode))
	return d.issue(CmdSetMode)
}

func (d *Driver) StartStation() error { return d.SetMode(ModeStation) }

func (d *Driver) StartSoftAP() error { return d.SetMode(ModeSoftAP) }

func (d *Driver) StartSoftAPStation() error { return d.SetMode(ModeSoftAPStation) }

// SetSoftAP configures the soft access point.
func (d *Driver) SetSoftAP(cfg SoftAPConfig) error {
	if err := d.begin(); err != nil {
		return err
	}
	if err := checkCredentials(cfg.SSID, cfg.Password); err != nil {
		return err
	}
	d.cmd.Start(at.CmdSoftAP).
		Str(cfg.SSID).
		Str(cfg.Password).
		Int(cfg.Channel).
		Int(int(cfg.Encryption))
	if cfg.MaxConn > 0 {
		d.cmd.Int(cfg.MaxConn).Bool(cfg.Hidden)
	}
	return d.issue(CmdSetSoftAP)
}

// ConnectAP joins an access point. bssid may be empty.
func (d *Driver) ConnectAP(ssid, password, bssid string) error {
	if err := d.begin(); err != nil {
		return err
	}
	if err := checkCredentials(ssid, password); err != nil {
		return err
	}
	d.cmd.Start(at.CmdJoinAP).Str(ssid).Str(password)
	if bssid != "" {
		d.cmd.Str(bssid)
	}
	return d.issue(CmdConnectAP)
}

// ConfigScanAP sets the sort order and columns of later scans.
func (d *Driver) ConfigScanAP(sortByRSSI bool, fields ScanField) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdScanOptions).Bool(sortByRSSI).Int(int(fields))
	return d.issue(CmdConfigScanAP)
}

// ScanAP lists access points, only those named ssid unless it is empty.
// The handler learns whether any was found.
func (d *Driver) ScanAP(ssid string) error {
	if err := d.begin(); err != nil {
		return err
	}
	if len(ssid) > maxSSIDLen {
		return fmt.Errorf("ssid: %w", ErrFieldTooLong)
	}
	d.cmd.Start(at.CmdScan)
	if ssid != "" {
		d.cmd.Str(ssid)
	}
	d.scanFound = false
	return d.issue(CmdScanAP)
}

// AutoConnAP sets whether the module rejoins the saved access point on boot.
func (d *Driver) AutoConnAP(enable bool) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.cmd.Start(at.CmdAutoConnect).Bool(enable)
	return d.issue(CmdAutoConn)
}

// GetIP queries the soft AP and station addresses.
func (d *Driver) GetIP() error {
	return d.query(at.CmdLocalAddr, CmdGetIP)
}

// GetAPIP queries the soft AP address and netmask.
func (d *Driver) GetAPIP() error {
	return d.query(at.CmdAPAddr, CmdGetAPIP)
}

// GetSTAIP queries the station address and netmask.
func (d *Driver) GetSTAIP() error {
	return d.query(at.CmdSTAAddr, CmdGetSTAIP)
}

func (d *Driver) query(name string, c Command) error {
	if err := d.begin(); err != nil {
		return err
	}
	d.apIP, d.apMask, d.staIP, d.staMask = 0, 0, 0, 0
	d.cmd.Start(name)
	return d.issue(c)
}

func checkCredentials(ssid, password string) error {
	if len(ssid) > maxSSIDLen {
		return fmt.Errorf("ssid: %w", ErrFieldTooLong)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password: %w", ErrFieldTooLong)
	}
	return nil
}
