package entity

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
)

func vec3(v prefabs.Vec3Spec) common.Vec3 {
	return common.V3(v.X, v.Y, v.Z)
}

func traceBones(specs []prefabs.BoneSpec) []component.TraceBone {
	bones := make([]component.TraceBone, 0, len(specs))
	for _, b := range specs {
		bones = append(bones, component.TraceBone{Name: b.Name, Offset: vec3(b.Offset), Radius: b.Radius})
	}
	return bones
}

func overlapVolumes(specs []prefabs.VolumeSpec) []component.OverlapVolume {
	volumes := make([]component.OverlapVolume, 0, len(specs))
	for _, v := range specs {
		volumes = append(volumes, component.OverlapVolume{
			Name:    v.Name,
			Radius:  v.Radius,
			Offset:  vec3(v.Offset),
			Enabled: v.Enabled,
			Inside:  map[uint64]bool{},
		})
	}
	return volumes
}

func curve(tables *prefabs.Tables, name string) component.Curve {
	keys := tables.Curves[name]
	if len(keys) == 0 {
		return nil
	}
	c := make(component.Curve, 0, len(keys))
	for _, k := range keys {
		c = append(c, component.Keyframe{Time: k.T, Value: k.V})
	}
	return c
}
