// Copyright 2026 The fmod-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package native

import "unsafe"

// Lib is the table of FMOD Core entry points.
//
// Each field is bound to the exported C symbol "FMOD_" + field name.
// Handles are passed as uintptr, C structs as unsafe.Pointer, FMOD_BOOL and
// FMOD_RESULT as int32.
type Lib struct {
	// Global.
	Memory_GetStats      func(currentAlloced, maxAlloced *int32, blocking int32) int32
	Debug_Initialize     func(flags uint32, mode int32, callback uintptr, filename string) int32
	File_SetDiskBusy     func(busy int32) int32
	File_GetDiskBusy     func(busy *int32) int32
	Thread_SetAttributes func(typ int32, affinity int64, priority int32, stackSize uint32) int32

	// System lifetime.
	System_Create       func(system *uintptr, headerVersion uint32) int32
	System_Release      func(system uintptr) int32
	System_Init         func(system uintptr, maxChannels int32, flags uint32, extraDriverData unsafe.Pointer) int32
	System_Close        func(system uintptr) int32
	System_Update       func(system uintptr) int32
	System_MixerSuspend func(system uintptr) int32
	System_MixerResume  func(system uintptr) int32

	// System device selection.
	System_SetOutput         func(system uintptr, output int32) int32
	System_GetOutput         func(system uintptr, output *int32) int32
	System_GetNumDrivers     func(system uintptr, numDrivers *int32) int32
	System_GetDriverInfo     func(system uintptr, id int32, name *byte, nameLen int32, guid unsafe.Pointer, systemRate *int32, speakerMode *int32, speakerModeChannels *int32) int32
	System_SetDriver         func(system uintptr, driver int32) int32
	System_GetDriver         func(system uintptr, driver *int32) int32
	System_SetOutputByPlugin func(system uintptr, handle uint32) int32
	System_GetOutputByPlugin func(system uintptr, handle *uint32) int32

	// System setup.
	System_SetSoftwareChannels     func(system uintptr, numSoftwareChannels int32) int32
	System_GetSoftwareChannels     func(system uintptr, numSoftwareChannels *int32) int32
	System_SetSoftwareFormat       func(system uintptr, sampleRate int32, speakerMode int32, numRawSpeakers int32) int32
	System_GetSoftwareFormat       func(system uintptr, sampleRate *int32, speakerMode *int32, numRawSpeakers *int32) int32
	System_SetDSPBufferSize        func(system uintptr, bufferLength uint32, numBuffers int32) int32
	System_GetDSPBufferSize        func(system uintptr, bufferLength *uint32, numBuffers *int32) int32
	System_SetFileSystem           func(system uintptr, userOpen, userClose, userRead, userSeek, userAsyncRead, userAsyncCancel uintptr, blockAlign int32) int32
	System_AttachFileSystem        func(system uintptr, userOpen, userClose, userRead, userSeek uintptr) int32
	System_SetAdvancedSettings     func(system uintptr, settings unsafe.Pointer) int32
	System_GetAdvancedSettings     func(system uintptr, settings unsafe.Pointer) int32
	System_SetSpeakerPosition      func(system uintptr, speaker int32, x, y float32, active int32) int32
	System_GetSpeakerPosition      func(system uintptr, speaker int32, x, y *float32, active *int32) int32
	System_SetStreamBufferSize     func(system uintptr, fileBufferSize uint32, fileBufferSizeType uint32) int32
	System_GetStreamBufferSize     func(system uintptr, fileBufferSize *uint32, fileBufferSizeType *uint32) int32
	System_Set3DSettings           func(system uintptr, dopplerScale, distanceFactor, rolloffScale float32) int32
	System_Get3DSettings           func(system uintptr, dopplerScale, distanceFactor, rolloffScale *float32) int32
	System_Set3DNumListeners       func(system uintptr, numListeners int32) int32
	System_Get3DNumListeners       func(system uintptr, numListeners *int32) int32
	System_Set3DListenerAttributes func(system uintptr, listener int32, pos, vel, forward, up unsafe.Pointer) int32
	System_Get3DListenerAttributes func(system uintptr, listener int32, pos, vel, forward, up unsafe.Pointer) int32

	// System plugins.
	System_SetPluginPath       func(system uintptr, path string) int32
	System_LoadPlugin          func(system uintptr, filename string, handle *uint32, priority uint32) int32
	System_UnloadPlugin        func(system uintptr, handle uint32) int32
	System_GetNumNestedPlugins func(system uintptr, handle uint32, count *int32) int32
	System_GetNestedPlugin     func(system uintptr, handle uint32, index int32, nestedHandle *uint32) int32
	System_GetNumPlugins       func(system uintptr, pluginType int32, numPlugins *int32) int32
	System_GetPluginHandle     func(system uintptr, pluginType int32, index int32, handle *uint32) int32
	System_GetPluginInfo       func(system uintptr, handle uint32, pluginType *int32, name *byte, nameLen int32, version *uint32) int32
	System_CreateDSPByPlugin   func(system uintptr, handle uint32, dsp *uintptr) int32

	// System information.
	System_GetVersion             func(system uintptr, version *uint32) int32
	System_GetOutputHandle        func(system uintptr, handle *uintptr) int32
	System_GetChannelsPlaying     func(system uintptr, channels, realChannels *int32) int32
	System_GetCPUUsage            func(system uintptr, usage unsafe.Pointer) int32
	System_GetFileUsage           func(system uintptr, sampleBytesRead, streamBytesRead, otherBytesRead *int64) int32
	System_GetDefaultMixMatrix    func(system uintptr, sourceSpeakerMode, targetSpeakerMode int32, matrix *float32, matrixHop int32) int32
	System_GetSpeakerModeChannels func(system uintptr, mode int32, channels *int32) int32

	// System creation and retrieval.
	System_CreateSound           func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32
	System_CreateStream          func(system uintptr, nameOrData unsafe.Pointer, mode uint32, exinfo unsafe.Pointer, sound *uintptr) int32
	System_CreateDSP             func(system uintptr, description unsafe.Pointer, dsp *uintptr) int32
	System_CreateDSPByType       func(system uintptr, typ int32, dsp *uintptr) int32
	System_CreateChannelGroup    func(system uintptr, name string, channelGroup *uintptr) int32
	System_CreateSoundGroup      func(system uintptr, name string, soundGroup *uintptr) int32
	System_CreateReverb3D        func(system uintptr, reverb *uintptr) int32
	System_PlaySound             func(system uintptr, sound uintptr, channelGroup uintptr, paused int32, channel *uintptr) int32
	System_PlayDSP               func(system uintptr, dsp uintptr, channelGroup uintptr, paused int32, channel *uintptr) int32
	System_GetChannel            func(system uintptr, channelID int32, channel *uintptr) int32
	System_GetDSPInfoByType      func(system uintptr, typ int32, description *unsafe.Pointer) int32
	System_GetMasterChannelGroup func(system uintptr, channelGroup *uintptr) int32
	System_GetMasterSoundGroup   func(system uintptr, soundGroup *uintptr) int32

	// System routing and reverb.
	System_AttachChannelGroupToPort   func(system uintptr, portType uint32, portIndex uint64, channelGroup uintptr, passThru int32) int32
	System_DetachChannelGroupFromPort func(system uintptr, channelGroup uintptr) int32
	System_SetReverbProperties        func(system uintptr, instance int32, prop unsafe.Pointer) int32
	System_GetReverbProperties        func(system uintptr, instance int32, prop unsafe.Pointer) int32
	System_LockDSP                    func(system uintptr) int32
	System_UnlockDSP                  func(system uintptr) int32

	// System recording.
	System_GetRecordNumDrivers func(system uintptr, numDrivers, numConnected *int32) int32
	System_GetRecordDriverInfo func(system uintptr, id int32, name *byte, nameLen int32, guid unsafe.Pointer, systemRate *int32, speakerMode *int32, speakerModeChannels *int32, state *uint32) int32
	System_GetRecordPosition   func(system uintptr, id int32, position *uint32) int32
	System_RecordStart         func(system uintptr, id int32, sound uintptr, loop int32) int32
	System_RecordStop          func(system uintptr, id int32) int32
	System_IsRecording         func(system uintptr, id int32, recording *int32) int32

	// System geometry.
	System_CreateGeometry       func(system uintptr, maxPolygons, maxVertices int32, geometry *uintptr) int32
	System_SetGeometrySettings  func(system uintptr, maxWorldSize float32) int32
	System_GetGeometrySettings  func(system uintptr, maxWorldSize *float32) int32
	System_LoadGeometry         func(system uintptr, data unsafe.Pointer, dataSize int32, geometry *uintptr) int32
	System_GetGeometryOcclusion func(system uintptr, listener, source unsafe.Pointer, direct, reverb *float32) int32

	// System network.
	System_SetNetworkProxy   func(system uintptr, proxy string) int32
	System_GetNetworkProxy   func(system uintptr, proxy *byte, proxyLen int32) int32
	System_SetNetworkTimeout func(system uintptr, timeout int32) int32
	System_GetNetworkTimeout func(system uintptr, timeout *int32) int32

	// System general.
	System_SetCallback func(system uintptr, callback uintptr, callbackMask uint32) int32
	System_SetUserData func(system uintptr, userData uintptr) int32
	System_GetUserData func(system uintptr, userData *uintptr) int32

	// Sound.
	Sound_Release               func(sound uintptr) int32
	Sound_GetSystemObject       func(sound uintptr, system *uintptr) int32
	Sound_Lock                  func(sound uintptr, offset, length uint32, ptr1, ptr2 *unsafe.Pointer, len1, len2 *uint32) int32
	Sound_Unlock                func(sound uintptr, ptr1, ptr2 unsafe.Pointer, len1, len2 uint32) int32
	Sound_SetDefaults           func(sound uintptr, frequency float32, priority int32) int32
	Sound_GetDefaults           func(sound uintptr, frequency *float32, priority *int32) int32
	Sound_Set3DMinMaxDistance   func(sound uintptr, min, max float32) int32
	Sound_Get3DMinMaxDistance   func(sound uintptr, min, max *float32) int32
	Sound_Set3DConeSettings     func(sound uintptr, insideConeAngle, outsideConeAngle, outsideVolume float32) int32
	Sound_Get3DConeSettings     func(sound uintptr, insideConeAngle, outsideConeAngle, outsideVolume *float32) int32
	Sound_Set3DCustomRolloff    func(sound uintptr, points unsafe.Pointer, numPoints int32) int32
	Sound_Get3DCustomRolloff    func(sound uintptr, points *unsafe.Pointer, numPoints *int32) int32
	Sound_GetSubSound           func(sound uintptr, index int32, subSound *uintptr) int32
	Sound_GetSubSoundParent     func(sound uintptr, parent *uintptr) int32
	Sound_GetName               func(sound uintptr, name *byte, nameLen int32) int32
	Sound_GetLength             func(sound uintptr, length *uint32, lengthType uint32) int32
	Sound_GetFormat             func(sound uintptr, typ, format, channels, bits *int32) int32
	Sound_GetNumSubSounds       func(sound uintptr, numSubSounds *int32) int32
	Sound_GetNumTags            func(sound uintptr, numTags, numTagsUpdated *int32) int32
	Sound_GetTag                func(sound uintptr, name unsafe.Pointer, index int32, tag unsafe.Pointer) int32
	Sound_GetOpenState          func(sound uintptr, openState *int32, percentBuffered *uint32, starving, diskBusy *int32) int32
	Sound_ReadData              func(sound uintptr, buffer unsafe.Pointer, length uint32, read *uint32) int32
	Sound_SeekData              func(sound uintptr, pcm uint32) int32
	Sound_SetSoundGroup         func(sound uintptr, soundGroup uintptr) int32
	Sound_GetSoundGroup         func(sound uintptr, soundGroup *uintptr) int32
	Sound_GetNumSyncPoints      func(sound uintptr, numSyncPoints *int32) int32
	Sound_GetSyncPoint          func(sound uintptr, index int32, point *uintptr) int32
	Sound_GetSyncPointInfo      func(sound uintptr, point uintptr, name *byte, nameLen int32, offset *uint32, offsetType uint32) int32
	Sound_AddSyncPoint          func(sound uintptr, offset uint32, offsetType uint32, name string, point *uintptr) int32
	Sound_DeleteSyncPoint       func(sound uintptr, point uintptr) int32
	Sound_SetMode               func(sound uintptr, mode uint32) int32
	Sound_GetMode               func(sound uintptr, mode *uint32) int32
	Sound_SetLoopCount          func(sound uintptr, loopCount int32) int32
	Sound_GetLoopCount          func(sound uintptr, loopCount *int32) int32
	Sound_SetLoopPoints         func(sound uintptr, loopStart, loopStartType, loopEnd, loopEndType uint32) int32
	Sound_GetLoopPoints         func(sound uintptr, loopStart *uint32, loopStartType uint32, loopEnd *uint32, loopEndType uint32) int32
	Sound_GetMusicNumChannels   func(sound uintptr, numChannels *int32) int32
	Sound_SetMusicChannelVolume func(sound uintptr, channel int32, volume float32) int32
	Sound_GetMusicChannelVolume func(sound uintptr, channel int32, volume *float32) int32
	Sound_SetMusicSpeed         func(sound uintptr, speed float32) int32
	Sound_GetMusicSpeed         func(sound uintptr, speed *float32) int32
	Sound_SetUserData           func(sound uintptr, userData uintptr) int32
	Sound_GetUserData           func(sound uintptr, userData *uintptr) int32

	// ChannelControl, reached through the Channel entry points for both
	// channels and channel groups.
	Channel_GetSystemObject      func(channel uintptr, system *uintptr) int32
	Channel_Stop                 func(channel uintptr) int32
	Channel_SetPaused            func(channel uintptr, paused int32) int32
	Channel_GetPaused            func(channel uintptr, paused *int32) int32
	Channel_SetVolume            func(channel uintptr, volume float32) int32
	Channel_GetVolume            func(channel uintptr, volume *float32) int32
	Channel_SetVolumeRamp        func(channel uintptr, ramp int32) int32
	Channel_GetVolumeRamp        func(channel uintptr, ramp *int32) int32
	Channel_GetAudibility        func(channel uintptr, audibility *float32) int32
	Channel_SetPitch             func(channel uintptr, pitch float32) int32
	Channel_GetPitch             func(channel uintptr, pitch *float32) int32
	Channel_SetMute              func(channel uintptr, mute int32) int32
	Channel_GetMute              func(channel uintptr, mute *int32) int32
	Channel_SetReverbProperties  func(channel uintptr, instance int32, wet float32) int32
	Channel_GetReverbProperties  func(channel uintptr, instance int32, wet *float32) int32
	Channel_SetLowPassGain       func(channel uintptr, gain float32) int32
	Channel_GetLowPassGain       func(channel uintptr, gain *float32) int32
	Channel_SetMode              func(channel uintptr, mode uint32) int32
	Channel_GetMode              func(channel uintptr, mode *uint32) int32
	Channel_SetCallback          func(channel uintptr, callback uintptr) int32
	Channel_IsPlaying            func(channel uintptr, isPlaying *int32) int32
	Channel_SetPan               func(channel uintptr, pan float32) int32
	Channel_SetMixLevelsOutput   func(channel uintptr, frontLeft, frontRight, center, lfe, surroundLeft, surroundRight, backLeft, backRight float32) int32
	Channel_SetMixLevelsInput    func(channel uintptr, levels *float32, numLevels int32) int32
	Channel_SetMixMatrix         func(channel uintptr, matrix *float32, outChannels, inChannels, inChannelHop int32) int32
	Channel_GetMixMatrix         func(channel uintptr, matrix *float32, outChannels, inChannels *int32, inChannelHop int32) int32
	Channel_GetDSPClock          func(channel uintptr, dspClock, parentClock *uint64) int32
	Channel_SetDelay             func(channel uintptr, dspClockStart, dspClockEnd uint64, stopChannels int32) int32
	Channel_GetDelay             func(channel uintptr, dspClockStart, dspClockEnd *uint64, stopChannels *int32) int32
	Channel_AddFadePoint         func(channel uintptr, dspClock uint64, volume float32) int32
	Channel_SetFadePointRamp     func(channel uintptr, dspClock uint64, volume float32) int32
	Channel_RemoveFadePoints     func(channel uintptr, dspClockStart, dspClockEnd uint64) int32
	Channel_GetFadePoints        func(channel uintptr, numPoints *uint32, pointDSPClock *uint64, pointVolume *float32) int32
	Channel_GetDSP               func(channel uintptr, index int32, dsp *uintptr) int32
	Channel_AddDSP               func(channel uintptr, index int32, dsp uintptr) int32
	Channel_RemoveDSP            func(channel uintptr, dsp uintptr) int32
	Channel_GetNumDSPs           func(channel uintptr, numDSPs *int32) int32
	Channel_SetDSPIndex          func(channel uintptr, dsp uintptr, index int32) int32
	Channel_GetDSPIndex          func(channel uintptr, dsp uintptr, index *int32) int32
	Channel_Set3DAttributes      func(channel uintptr, pos, vel unsafe.Pointer) int32
	Channel_Get3DAttributes      func(channel uintptr, pos, vel unsafe.Pointer) int32
	Channel_Set3DMinMaxDistance  func(channel uintptr, minDistance, maxDistance float32) int32
	Channel_Get3DMinMaxDistance  func(channel uintptr, minDistance, maxDistance *float32) int32
	Channel_Set3DConeSettings    func(channel uintptr, insideConeAngle, outsideConeAngle, outsideVolume float32) int32
	Channel_Get3DConeSettings    func(channel uintptr, insideConeAngle, outsideConeAngle, outsideVolume *float32) int32
	Channel_Set3DConeOrientation func(channel uintptr, orientation unsafe.Pointer) int32
	Channel_Get3DConeOrientation func(channel uintptr, orientation unsafe.Pointer) int32
	Channel_Set3DCustomRolloff   func(channel uintptr, points unsafe.Pointer, numPoints int32) int32
	Channel_Get3DCustomRolloff   func(channel uintptr, points *unsafe.Pointer, numPoints *int32) int32
	Channel_Set3DOcclusion       func(channel uintptr, directOcclusion, reverbOcclusion float32) int32
	Channel_Get3DOcclusion       func(channel uintptr, directOcclusion, reverbOcclusion *float32) int32
	Channel_Set3DSpread          func(channel uintptr, angle float32) int32
	Channel_Get3DSpread          func(channel uintptr, angle *float32) int32
	Channel_Set3DLevel           func(channel uintptr, level float32) int32
	Channel_Get3DLevel           func(channel uintptr, level *float32) int32
	Channel_Set3DDopplerLevel    func(channel uintptr, level float32) int32
	Channel_Get3DDopplerLevel    func(channel uintptr, level *float32) int32
	Channel_Set3DDistanceFilter  func(channel uintptr, custom int32, customLevel, centerFreq float32) int32
	Channel_Get3DDistanceFilter  func(channel uintptr, custom *int32, customLevel, centerFreq *float32) int32
	Channel_SetUserData          func(channel uintptr, userData uintptr) int32
	Channel_GetUserData          func(channel uintptr, userData *uintptr) int32

	// Channel only.
	Channel_SetFrequency    func(channel uintptr, frequency float32) int32
	Channel_GetFrequency    func(channel uintptr, frequency *float32) int32
	Channel_SetPriority     func(channel uintptr, priority int32) int32
	Channel_GetPriority     func(channel uintptr, priority *int32) int32
	Channel_SetPosition     func(channel uintptr, position uint32, posType uint32) int32
	Channel_GetPosition     func(channel uintptr, position *uint32, posType uint32) int32
	Channel_SetChannelGroup func(channel uintptr, channelGroup uintptr) int32
	Channel_GetChannelGroup func(channel uintptr, channelGroup *uintptr) int32
	Channel_SetLoopCount    func(channel uintptr, loopCount int32) int32
	Channel_GetLoopCount    func(channel uintptr, loopCount *int32) int32
	Channel_SetLoopPoints   func(channel uintptr, loopStart, loopStartType, loopEnd, loopEndType uint32) int32
	Channel_GetLoopPoints   func(channel uintptr, loopStart *uint32, loopStartType uint32, loopEnd *uint32, loopEndType uint32) int32
	Channel_IsVirtual       func(channel uintptr, isVirtual *int32) int32
	Channel_GetCurrentSound func(channel uintptr, sound *uintptr) int32
	Channel_GetIndex        func(channel uintptr, index *int32) int32

	// ChannelGroup only.
	ChannelGroup_Release        func(channelGroup uintptr) int32
	ChannelGroup_AddGroup       func(channelGroup uintptr, group uintptr, propagateDSPClock int32, connection *uintptr) int32
	ChannelGroup_GetNumGroups   func(channelGroup uintptr, numGroups *int32) int32
	ChannelGroup_GetGroup       func(channelGroup uintptr, index int32, group *uintptr) int32
	ChannelGroup_GetParentGroup func(channelGroup uintptr, group *uintptr) int32
	ChannelGroup_GetName        func(channelGroup uintptr, name *byte, nameLen int32) int32
	ChannelGroup_GetNumChannels func(channelGroup uintptr, numChannels *int32) int32
	ChannelGroup_GetChannel     func(channelGroup uintptr, index int32, channel *uintptr) int32

	// SoundGroup.
	SoundGroup_Release               func(soundGroup uintptr) int32
	SoundGroup_GetSystemObject       func(soundGroup uintptr, system *uintptr) int32
	SoundGroup_SetMaxAudible         func(soundGroup uintptr, maxAudible int32) int32
	SoundGroup_GetMaxAudible         func(soundGroup uintptr, maxAudible *int32) int32
	SoundGroup_SetMaxAudibleBehavior func(soundGroup uintptr, behavior int32) int32
	SoundGroup_GetMaxAudibleBehavior func(soundGroup uintptr, behavior *int32) int32
	SoundGroup_SetMuteFadeSpeed      func(soundGroup uintptr, speed float32) int32
	SoundGroup_GetMuteFadeSpeed      func(soundGroup uintptr, speed *float32) int32
	SoundGroup_SetVolume             func(soundGroup uintptr, volume float32) int32
	SoundGroup_GetVolume             func(soundGroup uintptr, volume *float32) int32
	SoundGroup_Stop                  func(soundGroup uintptr) int32
	SoundGroup_GetName               func(soundGroup uintptr, name *byte, nameLen int32) int32
	SoundGroup_GetNumSounds          func(soundGroup uintptr, numSounds *int32) int32
	SoundGroup_GetSound              func(soundGroup uintptr, index int32, sound *uintptr) int32
	SoundGroup_GetNumPlaying         func(soundGroup uintptr, numPlaying *int32) int32
	SoundGroup_SetUserData           func(soundGroup uintptr, userData uintptr) int32
	SoundGroup_GetUserData           func(soundGroup uintptr, userData *uintptr) int32

	// DSP.
	DSP_Release                func(dsp uintptr) int32
	DSP_GetSystemObject        func(dsp uintptr, system *uintptr) int32
	DSP_AddInput               func(dsp uintptr, input uintptr, connection *uintptr, typ int32) int32
	DSP_DisconnectFrom         func(dsp uintptr, target uintptr, connection uintptr) int32
	DSP_DisconnectAll          func(dsp uintptr, inputs, outputs int32) int32
	DSP_GetNumInputs           func(dsp uintptr, numInputs *int32) int32
	DSP_GetNumOutputs          func(dsp uintptr, numOutputs *int32) int32
	DSP_GetInput               func(dsp uintptr, index int32, input *uintptr, inputConnection *uintptr) int32
	DSP_GetOutput              func(dsp uintptr, index int32, output *uintptr, outputConnection *uintptr) int32
	DSP_SetActive              func(dsp uintptr, active int32) int32
	DSP_GetActive              func(dsp uintptr, active *int32) int32
	DSP_SetBypass              func(dsp uintptr, bypass int32) int32
	DSP_GetBypass              func(dsp uintptr, bypass *int32) int32
	DSP_SetWetDryMix           func(dsp uintptr, preWet, postWet, dry float32) int32
	DSP_GetWetDryMix           func(dsp uintptr, preWet, postWet, dry *float32) int32
	DSP_SetChannelFormat       func(dsp uintptr, channelMask uint32, numChannels int32, sourceSpeakerMode int32) int32
	DSP_GetChannelFormat       func(dsp uintptr, channelMask *uint32, numChannels *int32, sourceSpeakerMode *int32) int32
	DSP_GetOutputChannelFormat func(dsp uintptr, inMask uint32, inChannels int32, inSpeakerMode int32, outMask *uint32, outChannels *int32, outSpeakerMode *int32) int32
	DSP_Reset                  func(dsp uintptr) int32
	DSP_SetParameterFloat      func(dsp uintptr, index int32, value float32) int32
	DSP_SetParameterInt        func(dsp uintptr, index int32, value int32) int32
	DSP_SetParameterBool       func(dsp uintptr, index int32, value int32) int32
	DSP_SetParameterData       func(dsp uintptr, index int32, data unsafe.Pointer, length uint32) int32
	DSP_GetParameterFloat      func(dsp uintptr, index int32, value *float32, valueStr *byte, valueStrLen int32) int32
	DSP_GetParameterInt        func(dsp uintptr, index int32, value *int32, valueStr *byte, valueStrLen int32) int32
	DSP_GetParameterBool       func(dsp uintptr, index int32, value *int32, valueStr *byte, valueStrLen int32) int32
	DSP_GetParameterData       func(dsp uintptr, index int32, data *unsafe.Pointer, length *uint32, valueStr *byte, valueStrLen int32) int32
	DSP_GetNumParameters       func(dsp uintptr, numParams *int32) int32
	DSP_GetParameterInfo       func(dsp uintptr, index int32, desc *unsafe.Pointer) int32
	DSP_GetDataParameterIndex  func(dsp uintptr, dataType int32, index *int32) int32
	DSP_GetInfo                func(dsp uintptr, name *byte, version *uint32, channels, configWidth, configHeight *int32) int32
	DSP_GetType                func(dsp uintptr, typ *int32) int32
	DSP_GetIdle                func(dsp uintptr, idle *int32) int32
	DSP_SetUserData            func(dsp uintptr, userData uintptr) int32
	DSP_GetUserData            func(dsp uintptr, userData *uintptr) int32
	DSP_SetMeteringEnabled     func(dsp uintptr, inputEnabled, outputEnabled int32) int32
	DSP_GetMeteringEnabled     func(dsp uintptr, inputEnabled, outputEnabled *int32) int32
	DSP_GetMeteringInfo        func(dsp uintptr, inputInfo, outputInfo unsafe.Pointer) int32
	DSP_GetCPUUsage            func(dsp uintptr, exclusive, inclusive *uint32) int32

	// DSPConnection.
	DSPConnection_GetInput     func(connection uintptr, input *uintptr) int32
	DSPConnection_GetOutput    func(connection uintptr, output *uintptr) int32
	DSPConnection_SetMix       func(connection uintptr, volume float32) int32
	DSPConnection_GetMix       func(connection uintptr, volume *float32) int32
	DSPConnection_SetMixMatrix func(connection uintptr, matrix *float32, outChannels, inChannels, inChannelHop int32) int32
	DSPConnection_GetMixMatrix func(connection uintptr, matrix *float32, outChannels, inChannels *int32, inChannelHop int32) int32
	DSPConnection_GetType      func(connection uintptr, typ *int32) int32
	DSPConnection_SetUserData  func(connection uintptr, userData uintptr) int32
	DSPConnection_GetUserData  func(connection uintptr, userData *uintptr) int32

	// Geometry.
	Geometry_Release               func(geometry uintptr) int32
	Geometry_AddPolygon            func(geometry uintptr, directOcclusion, reverbOcclusion float32, doubleSided int32, numVertices int32, vertices unsafe.Pointer, polygonIndex *int32) int32
	Geometry_GetNumPolygons        func(geometry uintptr, numPolygons *int32) int32
	Geometry_GetMaxPolygons        func(geometry uintptr, maxPolygons, maxVertices *int32) int32
	Geometry_GetPolygonNumVertices func(geometry uintptr, index int32, numVertices *int32) int32
	Geometry_SetPolygonVertex      func(geometry uintptr, index, vertexIndex int32, vertex unsafe.Pointer) int32
	Geometry_GetPolygonVertex      func(geometry uintptr, index, vertexIndex int32, vertex unsafe.Pointer) int32
	Geometry_SetPolygonAttributes  func(geometry uintptr, index int32, directOcclusion, reverbOcclusion float32, doubleSided int32) int32
	Geometry_GetPolygonAttributes  func(geometry uintptr, index int32, directOcclusion, reverbOcclusion *float32, doubleSided *int32) int32
	Geometry_SetActive             func(geometry uintptr, active int32) int32
	Geometry_GetActive             func(geometry uintptr, active *int32) int32
	Geometry_SetRotation           func(geometry uintptr, forward, up unsafe.Pointer) int32
	Geometry_GetRotation           func(geometry uintptr, forward, up unsafe.Pointer) int32
	Geometry_SetPosition           func(geometry uintptr, position unsafe.Pointer) int32
	Geometry_GetPosition           func(geometry uintptr, position unsafe.Pointer) int32
	Geometry_SetScale              func(geometry uintptr, scale unsafe.Pointer) int32
	Geometry_GetScale              func(geometry uintptr, scale unsafe.Pointer) int32
	Geometry_Save                  func(geometry uintptr, data unsafe.Pointer, dataSize *int32) int32
	Geometry_SetUserData           func(geometry uintptr, userData uintptr) int32
	Geometry_GetUserData           func(geometry uintptr, userData *uintptr) int32

	// Reverb3D.
	Reverb3D_Release         func(reverb uintptr) int32
	Reverb3D_Set3DAttributes func(reverb uintptr, position unsafe.Pointer, minDistance, maxDistance float32) int32
	Reverb3D_Get3DAttributes func(reverb uintptr, position unsafe.Pointer, minDistance, maxDistance *float32) int32
	Reverb3D_SetProperties   func(reverb uintptr, properties unsafe.Pointer) int32
	Reverb3D_GetProperties   func(reverb uintptr, properties unsafe.Pointer) int32
	Reverb3D_SetActive       func(reverb uintptr, active int32) int32
	Reverb3D_GetActive       func(reverb uintptr, active *int32) int32
	Reverb3D_SetUserData     func(reverb uintptr, userData uintptr) int32
	Reverb3D_GetUserData     func(reverb uintptr, userData *uintptr) int32
}
