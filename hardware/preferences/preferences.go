// This file is part of Gomotion.
//
// Gomotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gomotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gomotion.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"math"

	"github.com/jetsetilly/gomotion/curated"
	"github.com/jetsetilly/gomotion/hardware/dynamics"
	"github.com/jetsetilly/gomotion/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	SwingSpeed       prefs.Float
	SwingReturnSpeed prefs.Float
	SwingDistance    prefs.Float
	SwingAngle       prefs.Float

	TiltAngle    prefs.Float
	TiltVelocity prefs.Float

	ShakeIntensity prefs.Float
	ShakeFrequency prefs.Float

	PointYaw    prefs.Float
	PointPitch  prefs.Float
	PointOffset prefs.Float

	IMUAccelWeight prefs.Float
	IMUYaw         prefs.Float

	// whether a MotionPlus is attached when the input does not say
	MotionPlus prefs.Bool
}

func degrees(r float64) float64 {
	return r * 180 / math.Pi
}

func radians(d float64) float64 {
	return d * math.Pi / 180
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the preferences are not backed by a file
// and Load() and Save() do nothing.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]interface {
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
		String() string
	}{
		"motion.swing.speed":       &p.SwingSpeed,
		"motion.swing.returnspeed": &p.SwingReturnSpeed,
		"motion.swing.distance":    &p.SwingDistance,
		"motion.swing.angle":       &p.SwingAngle,
		"motion.tilt.angle":        &p.TiltAngle,
		"motion.tilt.velocity":     &p.TiltVelocity,
		"motion.shake.intensity":   &p.ShakeIntensity,
		"motion.shake.frequency":   &p.ShakeFrequency,
		"motion.point.yaw":         &p.PointYaw,
		"motion.point.pitch":       &p.PointPitch,
		"motion.point.offset":      &p.PointOffset,
		"motion.imu.accelweight":   &p.IMUAccelWeight,
		"motion.imu.yaw":           &p.IMUYaw,
		"motion.motionplus":        &p.MotionPlus,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		// a missing prefs file is fine. the defaults will be used
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	swing := dynamics.DefaultSwingSettings()
	p.SwingSpeed.Set(swing.Speed)
	p.SwingReturnSpeed.Set(swing.ReturnSpeed)
	p.SwingDistance.Set(swing.MaxDistance)
	p.SwingAngle.Set(math.Round(degrees(swing.TwistAngle)))

	tilt := dynamics.DefaultTiltSettings()
	p.TiltAngle.Set(math.Round(degrees(tilt.MaxAngle)))
	p.TiltVelocity.Set(tilt.MaxRotationalVelocity / (2 * math.Pi))

	shake := dynamics.DefaultShakeSettings()
	p.ShakeIntensity.Set(shake.Intensity)
	p.ShakeFrequency.Set(shake.Frequency)

	point := dynamics.DefaultPointSettings()
	p.PointYaw.Set(math.Round(degrees(point.TotalYaw)))
	p.PointPitch.Set(math.Round(degrees(point.TotalPitch)))
	p.PointOffset.Set(point.VerticalOffset)

	imu := dynamics.DefaultIMUCursorSettings()
	p.IMUAccelWeight.Set(imu.AccelWeight)
	p.IMUYaw.Set(math.Round(degrees(imu.TotalYaw)))

	p.MotionPlus.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

func float(f *prefs.Float) float64 {
	return f.Get().(float64)
}

// SwingSettings returns the validated settings for the dynamics package.
func (p *Preferences) SwingSettings() (dynamics.SwingSettings, error) {
	s := dynamics.SwingSettings{
		Speed:       float(&p.SwingSpeed),
		ReturnSpeed: float(&p.SwingReturnSpeed),
		MaxDistance: float(&p.SwingDistance),
		TwistAngle:  radians(float(&p.SwingAngle)),
	}
	return s, s.Validate()
}

// TiltSettings returns the validated settings for the dynamics package.
func (p *Preferences) TiltSettings() (dynamics.TiltSettings, error) {
	s := dynamics.TiltSettings{
		MaxAngle:              radians(float(&p.TiltAngle)),
		MaxRotationalVelocity: float(&p.TiltVelocity) * 2 * math.Pi,
	}
	return s, s.Validate()
}

// ShakeSettings returns the validated settings for the dynamics package.
func (p *Preferences) ShakeSettings() (dynamics.ShakeSettings, error) {
	s := dynamics.ShakeSettings{
		Intensity: float(&p.ShakeIntensity),
		Frequency: float(&p.ShakeFrequency),
	}
	return s, s.Validate()
}

// PointSettings returns the validated settings for the dynamics package.
func (p *Preferences) PointSettings() (dynamics.PointSettings, error) {
	s := dynamics.PointSettings{
		TotalYaw:       radians(float(&p.PointYaw)),
		TotalPitch:     radians(float(&p.PointPitch)),
		VerticalOffset: float(&p.PointOffset),
	}
	return s, s.Validate()
}

// IMUCursorSettings returns the validated settings for the dynamics package.
func (p *Preferences) IMUCursorSettings() (dynamics.IMUCursorSettings, error) {
	s := dynamics.IMUCursorSettings{
		AccelWeight: float(&p.IMUAccelWeight),
		TotalYaw:    radians(float(&p.IMUYaw)),
	}
	return s, s.Validate()
}

// Motion collects the settings used by a device with motion sensing.
type Motion struct {
	Swing dynamics.SwingSettings
	Tilt  dynamics.TiltSettings
	Shake dynamics.ShakeSettings
}

// MotionSettings returns the swing, tilt and shake settings together. The
// first invalid setting is returned as an error.
func (p *Preferences) MotionSettings() (Motion, error) {
	var m Motion
	var err error
	if m.Swing, err = p.SwingSettings(); err != nil {
		return m, err
	}
	if m.Tilt, err = p.TiltSettings(); err != nil {
		return m, err
	}
	if m.Shake, err = p.ShakeSettings(); err != nil {
		return m, err
	}
	return m, nil
}
