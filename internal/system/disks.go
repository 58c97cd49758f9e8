package system

import (
	"sort"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// Disks converts raw mounts into disk views sorted by mount point. Mounts
// whose available space exceeds their size are returned separately as
// rejected.
func Disks(raw []model.RawDisk) (disks []model.Disk, rejected []model.RawDisk) {
	disks = make([]model.Disk, 0, len(raw))
	for _, d := range raw {
		if d.AvailableBytes > d.TotalBytes {
			rejected = append(rejected, d)
			continue
		}
		disks = append(disks, model.Disk{
			Name:           d.Name,
			FileSystem:     d.FileSystem,
			MountPoint:     d.MountPoint,
			TotalBytes:     d.TotalBytes,
			AvailableBytes: d.AvailableBytes,
			UsedBytes:      d.TotalBytes - d.AvailableBytes,
			Removable:      d.Removable,
		})
	}
	sort.Slice(disks, func(i, j int) bool { return disks[i].MountPoint < disks[j].MountPoint })
	return disks, rejected
}
